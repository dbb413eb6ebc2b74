package catalog

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the product catalog, the
// labor catalog, and the cargo status lookup.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategory(ctx context.Context, id int64) (*models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, updates map[string]any) error
	DeleteCategory(ctx context.Context, id int64) error

	ListPositions(ctx context.Context, filters PositionFilters) ([]models.Position, error)
	FindPosition(ctx context.Context, id int64) (*models.Position, error)
	FindPositionByExternalID(ctx context.Context, externalID string) (*models.Position, error)
	CreatePosition(ctx context.Context, position *models.Position) (*models.Position, error)
	UpdatePosition(ctx context.Context, id int64, updates map[string]any) error
	DeletePosition(ctx context.Context, id int64) error

	ListWorkCategories(ctx context.Context) ([]models.WorkCategory, error)
	CreateWorkCategory(ctx context.Context, category *models.WorkCategory) (*models.WorkCategory, error)
	UpdateWorkCategory(ctx context.Context, id int64, updates map[string]any) error
	DeleteWorkCategory(ctx context.Context, id int64) error

	ListWorkPositions(ctx context.Context, categoryID *int64) ([]models.WorkPosition, error)
	CreateWorkPosition(ctx context.Context, position *models.WorkPosition) (*models.WorkPosition, error)
	UpdateWorkPosition(ctx context.Context, id int64, updates map[string]any) error
	DeleteWorkPosition(ctx context.Context, id int64) error

	ListCargoStatuses(ctx context.Context) ([]models.CargoStatus, error)
	FindCargoStatus(ctx context.Context, id int64) (*models.CargoStatus, error)
	CreateCargoStatus(ctx context.Context, status *models.CargoStatus) (*models.CargoStatus, error)
	UpdateCargoStatus(ctx context.Context, id int64, updates map[string]any) error
	DeleteCargoStatus(ctx context.Context, id int64) error
}
