package models

// Position is a catalog product. Price is a default only: order entry copies
// it into the line item, where it can be overridden per line.
type Position struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Brand         string  `gorm:"column:brand;not null;default:''"`
	Name          string  `gorm:"column:name;not null"`
	CategoryID    int64   `gorm:"column:category_id;not null;index"`
	Price         string  `gorm:"column:price;not null;default:'0'"`
	Unit          string  `gorm:"column:unit;not null;default:''"`
	StockQuantity float64 `gorm:"column:stock_quantity;not null;default:0"`
	ExternalID    *string `gorm:"column:external_id"`
}
