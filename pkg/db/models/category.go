package models

// Category is a product grouping. Order items keep their own denormalized
// category label, so deleting a category never cascades into orders.
type Category struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name;not null"`
	DisplayOrder int    `gorm:"column:display_order;not null;default:0"`
	Color        string `gorm:"column:color;not null;default:''"`
}
