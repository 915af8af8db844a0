package models

import "time"

// DefaultOrderStatus is assigned to orders created without a status.
const DefaultOrderStatus = "pending"

// Order represents a checkout line referencing one customer and one
// menu item. ItemPrice is a snapshot of the item's price at write
// time, so later menu edits do not change historical orders.
// TotalPrice is ItemPrice * Quantity, computed and stored at write
// time, never recomputed on read.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	MenuItemID uint      `gorm:"not null;index" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	Quantity   int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	ItemPrice  int64     `gorm:"not null" json:"item_price"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
	Status     string    `gorm:"not null;default:'pending'" json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
