package catalog

import (
	"context"
	"testing"

	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
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
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	for _, table := range []string{"positions", "categories", "work_positions", "work_categories", "cargo_statuses"} {
		require.NoError(t, db.Exec(`DELETE FROM `+table).Error)
	}

	return db
}

func newCatalogService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupCatalogTestDB(t)))
	require.NoError(t, err)
	return svc
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	coded := pkgerrors.As(err)
	require.NotNil(t, coded, "expected coded error, got %v", err)
	assert.Equal(t, code, coded.Code())
}

func TestCategoryCRUD(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, CategoryInput{Name: "Parquet", DisplayOrder: 1, Color: "#8B4513"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := svc.UpdateCategory(ctx, created.ID, CategoryInput{Name: "Engineered Parquet", DisplayOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "Engineered Parquet", updated.Name)

	rows, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))
	rows, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = svc.UpdateCategory(ctx, created.ID, CategoryInput{Name: "x"})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := newCatalogService(t)
	_, err := svc.CreateCategory(context.Background(), CategoryInput{})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestPositionLifecycle(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, CategoryInput{Name: "Laminate"})
	require.NoError(t, err)

	position, err := svc.CreatePosition(ctx, PositionInput{
		Brand:         "Kronos",
		Name:          "Laminate Classic 33",
		CategoryID:    category.ID,
		Price:         "450",
		Unit:          "m2",
		StockQuantity: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "450.00", position.Price, "prices are normalized on write")

	_, err = svc.CreatePosition(ctx, PositionInput{Name: "Orphan", CategoryID: 999})
	assertCode(t, err, pkgerrors.CodeNotFound)

	filtered, err := svc.ListPositions(ctx, PositionFilters{Query: "Classic"})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestDeleteCategoryDoesNotCascadePositions(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, CategoryInput{Name: "Skirting"})
	require.NoError(t, err)
	position, err := svc.CreatePosition(ctx, PositionInput{
		Name:       "Oak Skirting 60mm",
		CategoryID: category.ID,
		Price:      "25",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	// the position survives with its stale category reference
	kept, err := svc.GetPosition(ctx, position.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, kept.CategoryID)
}

func TestWorkCatalog(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	category, err := svc.CreateWorkCategory(ctx, WorkCategoryInput{Name: "Installation"})
	require.NoError(t, err)

	position, err := svc.CreateWorkPosition(ctx, WorkPositionInput{
		CategoryID: category.ID,
		Name:       "Parquet laying",
		Price:      "200",
		Unit:       "m2",
	})
	require.NoError(t, err)
	assert.Equal(t, "200.00", position.Price)

	rows, err := svc.ListWorkPositions(ctx, &category.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, svc.DeleteWorkPosition(ctx, position.ID))
}

func TestCargoStatusPreorderIsReserved(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	// seed the reserved preorder status as id 1
	preorder, err := svc.CreateCargoStatus(ctx, CargoStatusInput{Name: "Preorder", DisplayOrder: 1})
	require.NoError(t, err)
	require.EqualValues(t, 1, preorder.ID)

	other, err := svc.CreateCargoStatus(ctx, CargoStatusInput{Name: "In transit", DisplayOrder: 2})
	require.NoError(t, err)

	err = svc.DeleteCargoStatus(ctx, preorder.ID)
	assertCode(t, err, pkgerrors.CodeStateConflict)

	// renaming the reserved status is cosmetic and allowed
	renamed, err := svc.UpdateCargoStatus(ctx, preorder.ID, CargoStatusInput{Name: "Pre-order", DisplayOrder: 1})
	require.NoError(t, err)
	assert.Equal(t, "Pre-order", renamed.Name)

	require.NoError(t, svc.DeleteCargoStatus(ctx, other.ID))
}

func TestImportPositions(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	existing, err := svc.CreateCategory(ctx, CategoryInput{Name: "Laminate"})
	require.NoError(t, err)

	ext := "SKU-100"
	summary, err := svc.ImportPositions(ctx, []ImportPositionInput{
		{Brand: "Tarkett", Name: "Oak 835", CategoryName: "Laminate", Price: "120", Unit: "m2", StockQuantity: 40, ExternalID: &ext},
		{Brand: "Grabo", Name: "Vinyl Roll", CategoryName: "Vinyl", Price: "85.5", Unit: "m2", StockQuantity: 12},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.CategoriesCreated, "unknown category names are created")

	rows, err := svc.ListPositions(ctx, PositionFilters{CategoryID: &existing.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "120.00", rows[0].Price)

	// re-importing the same external id updates in place
	summary, err = svc.ImportPositions(ctx, []ImportPositionInput{
		{Brand: "Tarkett", Name: "Oak 835", CategoryName: "Laminate", Price: "130", Unit: "m2", StockQuantity: 35, ExternalID: &ext},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 1, summary.Updated)

	rows, err = svc.ListPositions(ctx, PositionFilters{CategoryID: &existing.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "130.00", rows[0].Price)
	assert.InDelta(t, 35, rows[0].StockQuantity, 0.001)
}

func TestImportPositionsRejectsMissingFields(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.ImportPositions(context.Background(), []ImportPositionInput{
		{Name: "", CategoryName: "Laminate"},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}
