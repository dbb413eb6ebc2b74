package models

import "time"

// Order is a customer order. Monetary fields stay decimal-strings in storage;
// arithmetic happens on parsed decimals in the ledger package.
type Order struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"`
	InvoiceNumber   string     `gorm:"column:invoice_number;not null;default:''"`
	OrderDate       time.Time  `gorm:"column:order_date;not null;index"`
	ClientName      string     `gorm:"column:client_name;not null;default:''"`
	ClientPhone     string     `gorm:"column:client_phone;not null;default:''"`
	Prepayment      string     `gorm:"column:prepayment;not null;default:'0'"`
	DeliveryAddress string     `gorm:"column:delivery_address;not null;default:''"`
	ShippingDate    *time.Time `gorm:"column:shipping_date"`
	CargoStatusID   int64      `gorm:"column:cargo_status_id;not null;default:1;index"`
	Note            *string    `gorm:"column:note"`
	Remind          bool       `gorm:"column:remind;not null;default:false"`
	RemindAt        *time.Time `gorm:"column:remind_at"`
	IsCompleted     bool       `gorm:"column:is_completed;not null;default:false"`
	IsDeleted       bool       `gorm:"column:is_deleted;not null;default:false;index"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
