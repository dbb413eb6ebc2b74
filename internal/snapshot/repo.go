package snapshot

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines the whole-database reads and writes behind snapshot
// operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ReadAll(ctx context.Context) (*Snapshot, error)
	CountCategories(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	InsertCategories(ctx context.Context, rows []models.Category) error
	InsertPositions(ctx context.Context, rows []models.Position) error
	InsertWorkCategories(ctx context.Context, rows []models.WorkCategory) error
	InsertWorkPositions(ctx context.Context, rows []models.WorkPosition) error
	InsertCargoStatuses(ctx context.Context, rows []models.CargoStatus) error
	InsertOrders(ctx context.Context, rows []models.Order) error
	InsertUsers(ctx context.Context, rows []models.User) error
	ClearOrders(ctx context.Context) error
	ClearPositions(ctx context.Context) error
	ClearCatalog(ctx context.Context) error
	ClearUsers(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a snapshot repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ReadAll(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	db := r.db.WithContext(ctx)

	if err := db.Order("display_order ASC, id ASC").Find(&snap.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&snap.Positions).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&snap.WorkCategories).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&snap.WorkPositions).Error; err != nil {
		return nil, err
	}
	if err := db.Order("display_order ASC, id ASC").Find(&snap.CargoStatuses).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Items").Order("id ASC").Find(&snap.Orders).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&snap.Users).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error
	return count, err
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *repository) InsertCategories(ctx context.Context, rows []models.Category) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) InsertPositions(ctx context.Context, rows []models.Position) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) InsertWorkCategories(ctx context.Context, rows []models.WorkCategory) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) InsertWorkPositions(ctx context.Context, rows []models.WorkPosition) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) InsertCargoStatuses(ctx context.Context, rows []models.CargoStatus) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) InsertOrders(ctx context.Context, rows []models.Order) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) InsertUsers(ctx context.Context, rows []models.User) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) ClearOrders(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Order{}).Error
}

func (r *repository) ClearPositions(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Position{}).Error
}

func (r *repository) ClearCatalog(ctx context.Context) error {
	if err := r.ClearPositions(ctx); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.WorkPosition{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.WorkCategory{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.CargoStatus{}).Error
}

func (r *repository) ClearUsers(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.User{}).Error
}
