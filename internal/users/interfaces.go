package users

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository defines persistence operations for staff accounts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role enums.UserRole) (int64, error)
}
