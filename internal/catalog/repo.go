package catalog

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCategory(ctx context.Context, id int64) (*models.Category, error) {
	var row models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var row models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
}

func (r *repository) ListPositions(ctx context.Context, filters PositionFilters) ([]models.Position, error) {
	query := r.db.WithContext(ctx).Model(&models.Position{})
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Query != "" {
		like := "%" + filters.Query + "%"
		query = query.Where("name LIKE ? OR brand LIKE ?", like, like)
	}
	var rows []models.Position
	err := query.Order("name ASC, id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindPosition(ctx context.Context, id int64) (*models.Position, error) {
	var row models.Position
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindPositionByExternalID(ctx context.Context, externalID string) (*models.Position, error) {
	var row models.Position
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreatePosition(ctx context.Context, position *models.Position) (*models.Position, error) {
	if err := r.db.WithContext(ctx).Create(position).Error; err != nil {
		return nil, err
	}
	return position, nil
}

func (r *repository) UpdatePosition(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Position{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeletePosition(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Position{}).Error
}

func (r *repository) ListWorkCategories(ctx context.Context) ([]models.WorkCategory, error) {
	var rows []models.WorkCategory
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) CreateWorkCategory(ctx context.Context, category *models.WorkCategory) (*models.WorkCategory, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *repository) UpdateWorkCategory(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.WorkCategory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteWorkCategory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkCategory{}).Error
}

func (r *repository) ListWorkPositions(ctx context.Context, categoryID *int64) ([]models.WorkPosition, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkPosition{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	var rows []models.WorkPosition
	err := query.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) CreateWorkPosition(ctx context.Context, position *models.WorkPosition) (*models.WorkPosition, error) {
	if err := r.db.WithContext(ctx).Create(position).Error; err != nil {
		return nil, err
	}
	return position, nil
}

func (r *repository) UpdateWorkPosition(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.WorkPosition{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteWorkPosition(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkPosition{}).Error
}

func (r *repository) ListCargoStatuses(ctx context.Context) ([]models.CargoStatus, error) {
	var rows []models.CargoStatus
	err := r.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCargoStatus(ctx context.Context, id int64) (*models.CargoStatus, error) {
	var row models.CargoStatus
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreateCargoStatus(ctx context.Context, status *models.CargoStatus) (*models.CargoStatus, error) {
	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		return nil, err
	}
	return status, nil
}

func (r *repository) UpdateCargoStatus(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.CargoStatus{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteCargoStatus(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CargoStatus{}).Error
}
