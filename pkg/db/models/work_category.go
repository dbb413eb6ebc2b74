package models

// WorkCategory groups labor/service positions.
type WorkCategory struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
}
