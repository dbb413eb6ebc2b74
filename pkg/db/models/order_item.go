package models

// OrderItem is one order line. PositionName and CategoryName are point-in-time
// snapshots taken at entry; they deliberately diverge from the live catalog so
// historical orders stay readable after catalog edits or deletes. TotalPrice
// is stored, not derived on read, and is kept in sync by the ledger's line
// calculator whenever the row is written.
type OrderItem struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID      int64   `gorm:"column:order_id;not null;index"`
	PositionID   *int64  `gorm:"column:position_id"`
	PositionName string  `gorm:"column:position_name;not null;default:''"`
	CategoryName string  `gorm:"column:category_name;not null;default:''"`
	Quantity     float64 `gorm:"column:quantity;not null;default:0"`
	Price        string  `gorm:"column:price;not null;default:'0'"`
	Discount     string  `gorm:"column:discount;not null;default:'0'"`
	TotalPrice   string  `gorm:"column:total_price;not null;default:'0'"`
}
