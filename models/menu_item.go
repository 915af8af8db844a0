package models

// DefaultCategory is assigned to menu items created without a category.
const DefaultCategory = "General"

// MenuItem represents a sellable item on the restaurant menu.
// Price is stored in minor currency units.
type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"not null;check:price >= 0" json:"price"`
	Category    string `gorm:"not null;default:'General'" json:"category"`
	IsAvailable bool   `gorm:"not null;default:true" json:"is_available"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
