package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/floordesk/floordesk-backend/pkg/config"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	"github.com/floordesk/floordesk-backend/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testTxRunner struct {
	db *gorm.DB
}

func (r *testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func setupSnapshotTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  display_order INTEGER NOT NULL DEFAULT 0,
  color TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS positions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  brand TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL,
  category_id INTEGER NOT NULL,
  price TEXT NOT NULL DEFAULT '0',
  unit TEXT NOT NULL DEFAULT '',
  stock_quantity REAL NOT NULL DEFAULT 0,
  external_id TEXT
);`,
		`CREATE TABLE IF NOT EXISTS work_categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS work_positions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  price TEXT NOT NULL DEFAULT '0',
  unit TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS cargo_statuses (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  display_order INTEGER NOT NULL DEFAULT 0,
  color TEXT NOT NULL DEFAULT '',
  text_color TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  invoice_number TEXT NOT NULL DEFAULT '',
  order_date DATETIME NOT NULL,
  client_name TEXT NOT NULL DEFAULT '',
  client_phone TEXT NOT NULL DEFAULT '',
  prepayment TEXT NOT NULL DEFAULT '0',
  delivery_address TEXT NOT NULL DEFAULT '',
  shipping_date DATETIME,
  cargo_status_id INTEGER NOT NULL DEFAULT 1,
  note TEXT,
  remind INTEGER NOT NULL DEFAULT 0,
  remind_at DATETIME,
  is_completed INTEGER NOT NULL DEFAULT 0,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS order_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL,
  position_id INTEGER,
  position_name TEXT NOT NULL DEFAULT '',
  category_name TEXT NOT NULL DEFAULT '',
  quantity REAL NOT NULL DEFAULT 0,
  price TEXT NOT NULL DEFAULT '0',
  discount TEXT NOT NULL DEFAULT '0',
  total_price TEXT NOT NULL DEFAULT '0'
);`,
		`CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL DEFAULT 'user',
  permissions TEXT NOT NULL DEFAULT '{}',
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	for _, table := range []string{
		"order_items", "orders", "positions", "work_positions",
		"work_categories", "categories", "cargo_statuses", "users",
	} {
		require.NoError(t, db.Exec(`DELETE FROM `+table).Error)
	}

	return db
}

func newSnapshotService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(db), &testTxRunner{db: db}, testPasswordConfig())
	require.NoError(t, err)
	return svc
}

func TestSeedInstallsDefaults(t *testing.T) {
	db := setupSnapshotTestDB(t)
	svc := newSnapshotService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Categories, 16)
	assert.Len(t, snap.WorkCategories, 4)
	assert.Len(t, snap.WorkPositions, 9)
	assert.Len(t, snap.CargoStatuses, 10)
	require.Len(t, snap.Users, 1)

	admin := snap.Users[0]
	assert.Equal(t, DefaultAdminUsername, admin.Username)
	assert.Equal(t, enums.UserRoleAdmin, admin.Role)
	for _, module := range enums.ModuleKeys() {
		assert.Equal(t, enums.PermissionEdit, admin.Permissions.Level(module))
	}
	ok, err := security.VerifyPassword(DefaultAdminPassword, admin.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Preorder status keeps its reserved id.
	assert.Equal(t, int64(1), snap.CargoStatuses[0].ID)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSnapshotTestDB(t)
	svc := newSnapshotService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Categories, 16)
	assert.Len(t, snap.Users, 1)
}

func TestImportReplacesEverything(t *testing.T) {
	db := setupSnapshotTestDB(t)
	svc := newSnapshotService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	incoming := &Snapshot{
		Categories: []models.Category{{ID: 3, Name: "Laminate", DisplayOrder: 1}},
		Positions: []models.Position{
			{ID: 7, Name: "Oak 12mm", CategoryID: 3, Price: "1500.00", Unit: "m2"},
		},
		CargoStatuses: []models.CargoStatus{{ID: 1, Name: "preorder"}},
		Orders: []models.Order{
			{
				ID:            12,
				InvoiceNumber: "№ 0012",
				OrderDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				ClientName:    "Ivanov",
				Prepayment:    "1000.00",
				CargoStatusID: 1,
				Items: []models.OrderItem{
					{PositionName: "Oak 12mm", Quantity: 10, Price: "1500.00", TotalPrice: "15000.00"},
				},
			},
			{
				ID:            30,
				OrderDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				ClientName:    "Petrov",
				CargoStatusID: 1,
			},
		},
		Users: []models.User{
			{ID: 5, Username: "owner", Role: enums.UserRoleAdmin, Permissions: defaultAdminPermissions()},
		},
	}

	summary, err := svc.Import(ctx, incoming)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Categories)
	assert.Equal(t, 2, summary.Orders)
	assert.Equal(t, 1, summary.Users)

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, int64(3), snap.Categories[0].ID)
	assert.Empty(t, snap.WorkCategories)

	require.Len(t, snap.Orders, 2)
	assert.Equal(t, int64(12), snap.Orders[0].ID)
	assert.Equal(t, "№ 0012", snap.Orders[0].InvoiceNumber)
	require.Len(t, snap.Orders[0].Items, 1)
	assert.Equal(t, "15000.00", snap.Orders[0].Items[0].TotalPrice)

	// Missing invoice numbers are derived from the preserved id.
	assert.Equal(t, "№ 0030", snap.Orders[1].InvoiceNumber)

	require.Len(t, snap.Users, 1)
	assert.Equal(t, "owner", snap.Users[0].Username)
}

func TestImportRejectsOrderWithoutID(t *testing.T) {
	db := setupSnapshotTestDB(t)
	svc := newSnapshotService(t, db)

	_, err := svc.Import(context.Background(), &Snapshot{
		Orders: []models.Order{{ClientName: "no id"}},
	})
	require.Error(t, err)
}

func TestClearOrdersKeepsCatalogAndUsers(t *testing.T) {
	db := setupSnapshotTestDB(t)
	svc := newSnapshotService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, db.Create(&models.Position{
		Name: "Oak 12mm", CategoryID: 5, Price: "1500.00", Unit: "m2",
	}).Error)
	require.NoError(t, db.Create(&models.Order{
		InvoiceNumber: "№ 0001",
		OrderDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ClientName:    "Ivanov",
		CargoStatusID: 1,
		Items:         []models.OrderItem{{PositionName: "Oak 12mm", Quantity: 1, Price: "1500.00", TotalPrice: "1500.00"}},
	}).Error)

	require.NoError(t, svc.ClearOrders(ctx))

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Orders)
	assert.Len(t, snap.Positions, 1)
	assert.Len(t, snap.Categories, 16)
	assert.Len(t, snap.Users, 1)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestClearAllDataKeepsCategoriesAndStatuses(t *testing.T) {
	db := setupSnapshotTestDB(t)
	svc := newSnapshotService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, db.Create(&models.Position{
		Name: "Oak 12mm", CategoryID: 5, Price: "1500.00", Unit: "m2",
	}).Error)
	require.NoError(t, db.Create(&models.Order{
		InvoiceNumber: "№ 0001",
		OrderDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ClientName:    "Ivanov",
		CargoStatusID: 1,
	}).Error)

	require.NoError(t, svc.ClearAllData(ctx))

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Orders)
	assert.Empty(t, snap.Positions)
	assert.Len(t, snap.Categories, 16)
	assert.Len(t, snap.CargoStatuses, 10)
	assert.Len(t, snap.Users, 1)
}
