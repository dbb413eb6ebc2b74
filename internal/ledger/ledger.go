// Package ledger holds the financial computation core: line totals, order
// aggregates, debt and revenue rollups, and per-client running balances.
// Every function is pure and operates on immutable snapshots of the order
// set, so callers can re-run them freely without ordering constraints.
package ledger

import (
	"time"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	// PreorderStatusID is the reserved cargo status for preorders. Orders in
	// this status never count toward debt aggregates or the debtors list.
	PreorderStatusID int64 = 1

	// ClientPaidStatusID is the terminal status a settlement forces when the
	// remaining debt drops below the debt epsilon.
	ClientPaidStatusID int64 = 8
)

var (
	// DebtEpsilon is the threshold below which an outstanding balance is
	// considered settled.
	DebtEpsilon = decimal.RequireFromString("0.01")

	// DiscountEpsilon is the threshold above which an order counts as
	// discounted in the discount report.
	DiscountEpsilon = decimal.RequireFromString("0.005")

	oneHundred = decimal.NewFromInt(100)
)

// Item is an immutable snapshot of one order line. PositionName and
// CategoryName are point-in-time labels, kept even after the catalog entry
// they came from is edited or deleted.
type Item struct {
	ID           int64
	PositionID   *int64
	PositionName string
	CategoryName string
	Quantity     decimal.Decimal
	Price        decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
}

// Order is the ledger's view of one order with its embedded lines.
type Order struct {
	ID            int64
	InvoiceNumber string
	OrderDate     time.Time
	ClientName    string
	ClientPhone   string
	Prepayment    decimal.Decimal
	ShippingDate  *time.Time
	CargoStatusID int64
	IsCompleted   bool
	IsDeleted     bool
	Items         []Item
}

// ItemFromModel converts a stored order item into a ledger snapshot.
// Malformed monetary strings degrade to zero rather than failing.
func ItemFromModel(m models.OrderItem) Item {
	return Item{
		ID:           m.ID,
		PositionID:   m.PositionID,
		PositionName: m.PositionName,
		CategoryName: m.CategoryName,
		Quantity:     decimal.NewFromFloat(m.Quantity),
		Price:        money.Parse(m.Price),
		Discount:     money.Parse(m.Discount),
		Total:        money.Parse(m.TotalPrice),
	}
}

// FromModel converts a stored order into a ledger snapshot.
func FromModel(m models.Order) Order {
	items := make([]Item, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, ItemFromModel(item))
	}
	return Order{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		OrderDate:     m.OrderDate,
		ClientName:    m.ClientName,
		ClientPhone:   m.ClientPhone,
		Prepayment:    money.Parse(m.Prepayment),
		ShippingDate:  m.ShippingDate,
		CargoStatusID: m.CargoStatusID,
		IsCompleted:   m.IsCompleted,
		IsDeleted:     m.IsDeleted,
		Items:         items,
	}
}

// FromModels converts a stored order set into ledger snapshots.
func FromModels(ms []models.Order) []Order {
	orders := make([]Order, 0, len(ms))
	for _, m := range ms {
		orders = append(orders, FromModel(m))
	}
	return orders
}

// IsPreorder reports whether the order sits in the reserved preorder status.
func (o Order) IsPreorder() bool {
	return o.CargoStatusID == PreorderStatusID
}
