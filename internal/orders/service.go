package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/money"
	"github.com/floordesk/floordesk-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines order operations beyond repository reads.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*OrderList, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id int64, input UpdateOrderInput) (*models.Order, error)
	SettlePayment(ctx context.Context, id int64, input SettleInput) (*models.Order, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) (*models.Order, error)
	Import(ctx context.Context, inputs []ImportOrderInput) (int, error)
}

type service struct {
	repo Repository
	tx   txRunner
	now  func() time.Time
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, now: time.Now}, nil
}

// InvoiceNumber renders the zero-padded invoice label derived from the
// order id. Assigned once at creation, never reassigned.
func InvoiceNumber(orderID int64) string {
	return fmt.Sprintf("№ %04d", orderID)
}

func buildItems(inputs []ItemInput) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("item %d: quantity must be positive", i+1))
		}
		qty := decimal.NewFromFloat(in.Quantity)
		price := money.Parse(in.Price)
		discount := money.Parse(in.Discount)
		total := ledger.LineTotal(qty, price, discount)
		items = append(items, models.OrderItem{
			PositionID:   in.PositionID,
			PositionName: in.PositionName,
			CategoryName: in.CategoryName,
			Quantity:     in.Quantity,
			Price:        money.Format(price),
			Discount:     money.Format(discount),
			TotalPrice:   money.Format(total),
		})
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if input.ClientName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client name required")
	}
	if input.OrderDate.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order date required")
	}

	items, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	statusID := input.CargoStatusID
	if statusID == 0 {
		statusID = ledger.PreorderStatusID
	}

	order := &models.Order{
		OrderDate:       input.OrderDate,
		ClientName:      input.ClientName,
		ClientPhone:     input.ClientPhone,
		Prepayment:      money.Format(money.Parse(input.Prepayment)),
		DeliveryAddress: input.DeliveryAddress,
		ShippingDate:    input.ShippingDate,
		CargoStatusID:   statusID,
		Note:            input.Note,
		Remind:          input.Remind,
		RemindAt:        input.RemindAt,
		Items:           items,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		order.InvoiceNumber = InvoiceNumber(order.ID)
		if err := repo.Update(ctx, order.ID, map[string]any{"invoice_number": order.InvoiceNumber}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "assign invoice number")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Order, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*OrderList, error) {
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Order, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateOrderInput) (*models.Order, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if input.ClientName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client name required")
	}
	if input.CargoStatusID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cargo status required")
	}

	items, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		if existing.IsDeleted {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "order is deleted")
		}

		updates := map[string]any{
			"order_date":       input.OrderDate,
			"client_name":      input.ClientName,
			"client_phone":     input.ClientPhone,
			"prepayment":       money.Format(money.Parse(input.Prepayment)),
			"delivery_address": input.DeliveryAddress,
			"shipping_date":    input.ShippingDate,
			"cargo_status_id":  input.CargoStatusID,
			"note":             input.Note,
			"remind":           input.Remind,
			"remind_at":        input.RemindAt,
			"is_completed":     input.IsCompleted,
		}
		if err := repo.Update(ctx, id, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
		}
		if err := repo.ReplaceItems(ctx, id, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// settledNote is written on full settlement when the order has no note yet.
const settledNote = "paid in full"

func (s *service) SettlePayment(ctx context.Context, id int64, input SettleInput) (*models.Order, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	amount := money.Parse(input.Amount)
	if !amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "settlement amount must be positive")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		if existing.IsDeleted {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "order is deleted")
		}

		snapshot := ledger.FromModel(*existing)
		newPrepayment := snapshot.Prepayment.Add(amount)

		updates := map[string]any{
			"prepayment": money.Format(newPrepayment),
		}

		remaining := ledger.OrderTotals(snapshot).Total.Sub(newPrepayment)
		if remaining.LessThanOrEqual(ledger.DebtEpsilon) {
			// Full settlement forces the terminal paid status. Partial
			// settlements leave the status untouched.
			updates["cargo_status_id"] = ledger.ClientPaidStatusID
			updates["is_completed"] = true
			if existing.Note == nil || *existing.Note == "" {
				note := settledNote
				if input.Note != nil && *input.Note != "" {
					note = *input.Note
				}
				updates["note"] = note
			}
		}

		if err := repo.Update(ctx, id, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "settle payment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *service) SoftDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	_, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, map[string]any{"is_deleted": true}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	return nil
}

// Restore brings back a soft-deleted order. Restoring an order that was
// never deleted is a no-op rather than an error.
func (s *service) Restore(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.IsDeleted {
		return order, nil
	}
	if err := s.repo.Update(ctx, id, map[string]any{"is_deleted": false}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "restore order")
	}
	return s.Get(ctx, id)
}

// Import bulk-adds orders keeping the source ids and invoice numbers.
// Orders whose id already exists are skipped, so re-importing the same
// file is safe.
func (s *service) Import(ctx context.Context, inputs []ImportOrderInput) (int, error) {
	orders := make([]*models.Order, 0, len(inputs))
	for _, in := range inputs {
		if in.ID <= 0 {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "imported order id required")
		}
		items, err := buildItems(in.Items)
		if err != nil {
			return 0, err
		}
		invoice := in.InvoiceNumber
		if invoice == "" {
			invoice = InvoiceNumber(in.ID)
		}
		statusID := in.CargoStatusID
		if statusID == 0 {
			statusID = ledger.PreorderStatusID
		}
		orders = append(orders, &models.Order{
			ID:              in.ID,
			InvoiceNumber:   invoice,
			OrderDate:       in.OrderDate,
			ClientName:      in.ClientName,
			ClientPhone:     in.ClientPhone,
			Prepayment:      money.Format(money.Parse(in.Prepayment)),
			DeliveryAddress: in.DeliveryAddress,
			ShippingDate:    in.ShippingDate,
			CargoStatusID:   statusID,
			Note:            in.Note,
			Remind:          in.Remind,
			RemindAt:        in.RemindAt,
			IsCompleted:     in.IsCompleted,
			IsDeleted:       in.IsDeleted,
			Items:           items,
		})
	}

	imported := 0
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, order := range orders {
			_, err := repo.FindByID(ctx, order.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check imported order")
			}
			if _, err := repo.Create(ctx, order); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "import order")
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}
