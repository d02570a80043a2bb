package entity

import (
	"gorm.io/gorm"
)

// FoodItem. Name is the natural key within a foodtruck: ingredients, media
// and order lines reference (foodtruck_id, food_name), so renaming an item
// is copy-new-then-move-children-then-delete-old inside one transaction.
type FoodItem struct {
	gorm.Model
	FoodtruckID uint   `gorm:"uniqueIndex:idx_food_items_truck_name" json:"foodtruckId"`
	Name        string `gorm:"uniqueIndex:idx_food_items_truck_name" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents

	// primary image as BLOB
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	Rating float64 `json:"rating"`

	Foodtruck   Foodtruck    `json:"-"`
	Ingredients []Ingredient `gorm:"foreignKey:FoodtruckID,FoodName;references:FoodtruckID,Name" json:"ingredients"`
	Media       []Media      `gorm:"foreignKey:FoodtruckID,FoodName;references:FoodtruckID,Name" json:"-"`
}
