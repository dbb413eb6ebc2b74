package models

// CargoStatus is a user-editable logistics status label. Status id 1 is
// reserved for preorders and carries hardcoded ledger semantics; the rest are
// cosmetic workflow labels.
type CargoStatus struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name;not null"`
	DisplayOrder int    `gorm:"column:display_order;not null;default:0"`
	Color        string `gorm:"column:color;not null;default:''"`
	TextColor    string `gorm:"column:text_color;not null;default:''"`
}
