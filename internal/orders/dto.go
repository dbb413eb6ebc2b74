package orders

import (
	"time"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
)

// ItemInput is one order line as submitted by the entry form. PositionName
// and CategoryName are point-in-time labels copied from the catalog; they
// stay on the line even after the catalog entry changes.
type ItemInput struct {
	PositionID   *int64  `json:"position_id" validate:"omitempty,gt=0"`
	PositionName string  `json:"position_name" validate:"required"`
	CategoryName string  `json:"category_name"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	Price        string  `json:"price" validate:"required"`
	Discount     string  `json:"discount"`
}

// CreateOrderInput captures the order entry form.
type CreateOrderInput struct {
	OrderDate       time.Time   `json:"order_date" validate:"required"`
	ClientName      string      `json:"client_name" validate:"required"`
	ClientPhone     string      `json:"client_phone"`
	Prepayment      string      `json:"prepayment"`
	DeliveryAddress string      `json:"delivery_address"`
	ShippingDate    *time.Time  `json:"shipping_date"`
	CargoStatusID   int64       `json:"cargo_status_id" validate:"omitempty,gt=0"`
	Note            *string     `json:"note"`
	Remind          bool        `json:"remind"`
	RemindAt        *time.Time  `json:"remind_at"`
	Items           []ItemInput `json:"items" validate:"dive"`
}

// UpdateOrderInput captures the order edit form. The item set replaces the
// stored one wholesale.
type UpdateOrderInput struct {
	OrderDate       time.Time   `json:"order_date" validate:"required"`
	ClientName      string      `json:"client_name" validate:"required"`
	ClientPhone     string      `json:"client_phone"`
	Prepayment      string      `json:"prepayment"`
	DeliveryAddress string      `json:"delivery_address"`
	ShippingDate    *time.Time  `json:"shipping_date"`
	CargoStatusID   int64       `json:"cargo_status_id" validate:"required,gt=0"`
	Note            *string     `json:"note"`
	Remind          bool        `json:"remind"`
	RemindAt        *time.Time  `json:"remind_at"`
	IsCompleted     bool        `json:"is_completed"`
	Items           []ItemInput `json:"items" validate:"dive"`
}

// SettleInput records a debt payment against an order.
type SettleInput struct {
	Amount string  `json:"amount" validate:"required"`
	Note   *string `json:"note"`
}

// ImportOrderInput is one order of a snapshot import. IDs and invoice
// numbers are preserved so references in the source system stay valid.
type ImportOrderInput struct {
	ID              int64       `json:"id" validate:"required,gt=0"`
	InvoiceNumber   string      `json:"invoice_number"`
	OrderDate       time.Time   `json:"order_date" validate:"required"`
	ClientName      string      `json:"client_name"`
	ClientPhone     string      `json:"client_phone"`
	Prepayment      string      `json:"prepayment"`
	DeliveryAddress string      `json:"delivery_address"`
	ShippingDate    *time.Time  `json:"shipping_date"`
	CargoStatusID   int64       `json:"cargo_status_id"`
	Note            *string     `json:"note"`
	Remind          bool        `json:"remind"`
	RemindAt        *time.Time  `json:"remind_at"`
	IsCompleted     bool        `json:"is_completed"`
	IsDeleted       bool        `json:"is_deleted"`
	Items           []ItemInput `json:"items" validate:"dive"`
}

// Filters describe the inputs supported by the orders list.
type Filters struct {
	CargoStatusID  *int64
	DateFrom       *time.Time
	DateTo         *time.Time
	Query          string
	IncludeDeleted bool
}

// OrderList wraps one page of orders plus the total row count.
type OrderList struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}
