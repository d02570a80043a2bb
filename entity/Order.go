package entity

import (
	"gorm.io/gorm"
)

// Order lifecycle: Created -> Ready (IsReady) -> Collected (IsCollected).
// The flags are independent columns, so collecting an order that was never
// marked ready stays legal.
type Order struct {
	gorm.Model
	FoodtruckID uint      `json:"foodtruckId"`
	Foodtruck   Foodtruck `json:"-"`

	ClientID uint `json:"clientId"`
	Client   User `gorm:"foreignKey:ClientID" json:"-"`

	AddressID uint    `json:"addressId"`
	Address   Address `json:"-"`

	ConfirmerID *uint `json:"confirmerId"` // worker who confirmed pickup
	Confirmer   *User `gorm:"foreignKey:ConfirmerID" json:"-"`

	IsReady     bool `json:"isReady"`
	IsCollected bool `json:"isCollected"`

	Items []OrderItem `json:"items"`
}
