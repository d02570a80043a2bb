package entity

import (
	"gorm.io/gorm"
)

// OpenTime is one opening interval of a foodtruck. Day is a 3-letter code
// (Mon..Sun); From/To are minutes since midnight, From < To.
type OpenTime struct {
	gorm.Model
	FoodtruckID uint   `json:"foodtruckId"`
	Day         string `json:"day"`
	From        int    `json:"from"`
	To          int    `json:"to"`
}
