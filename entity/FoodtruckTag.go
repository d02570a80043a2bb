package entity

import (
	"gorm.io/gorm"
)

type FoodtruckTag struct {
	gorm.Model
	FoodtruckID uint   `json:"foodtruckId"`
	Name        string `json:"name"`
}
