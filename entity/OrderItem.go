package entity

import (
	"gorm.io/gorm"
)

// OrderItem is frozen at order creation: food name and unit price are
// snapshots, independent of later menu edits.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodtruckID uint   `json:"foodtruckId"`
	FoodName    string `json:"foodName"`

	Amount    int   `json:"amount"`
	UnitPrice int64 `json:"unitPrice"` // cents
}
