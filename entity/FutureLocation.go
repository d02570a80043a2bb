package entity

import (
	"time"

	"gorm.io/gorm"
)

// FutureLocation is a planned stop. Date is truncated to midnight; a truck
// can hold at most one future location per date.
type FutureLocation struct {
	gorm.Model
	FoodtruckID uint      `json:"foodtruckId"`
	Date        time.Time `json:"date"`

	AddressID uint    `json:"addressId"`
	Address   Address `json:"-"`
}
