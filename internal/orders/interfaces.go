package orders

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository defines persistence operations for orders and their lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*OrderList, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem) error
}
