package entity

import (
	"gorm.io/gorm"
)

// Cart is bound to the foodtruck of its first item; FoodtruckID 0 means
// unbound (empty cart).
type Cart struct {
	gorm.Model
	UserID      uint      `json:"userId" gorm:"uniqueIndex"`
	User        User      `json:"-"`
	FoodtruckID uint      `json:"foodtruckId"`
	Foodtruck   Foodtruck `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
