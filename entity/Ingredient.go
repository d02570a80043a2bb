package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	FoodtruckID uint   `json:"foodtruckId"`
	FoodName    string `json:"foodName"`
	Name        string `json:"name"`
}
