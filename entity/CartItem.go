package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodtruckID uint   `json:"foodtruckId"`
	FoodName    string `json:"foodName"`

	Amount    int   `json:"amount"`
	UnitPrice int64 `json:"unitPrice"` // cents, snapshot at add time
}
