package models

// WorkPosition is a labor/service catalog entry. Structurally a Position
// without stock tracking.
type WorkPosition struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID int64  `gorm:"column:category_id;not null;index"`
	Name       string `gorm:"column:name;not null"`
	Price      string `gorm:"column:price;not null;default:'0'"`
	Unit       string `gorm:"column:unit;not null;default:''"`
}
