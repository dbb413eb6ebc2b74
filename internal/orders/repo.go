package orders

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/pagination"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, filters Filters) (*OrderList, error) {
	params = params.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Order{})
	if !filters.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filters.CargoStatusID != nil {
		query = query.Where("cargo_status_id = ?", *filters.CargoStatusID)
	}
	if filters.DateFrom != nil {
		query = query.Where("order_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("order_date <= ?", *filters.DateTo)
	}
	if filters.Query != "" {
		like := "%" + filters.Query + "%"
		query = query.Where(
			"client_name LIKE ? OR client_phone LIKE ? OR invoice_number LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.Order
	err := query.
		Preload("Items").
		Order("order_date DESC, id DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &OrderList{
		Orders: rows,
		Total:  total,
		Page:   params.Page,
		Limit:  params.Limit,
	}, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
