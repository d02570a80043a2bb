package entity

import (
	"gorm.io/gorm"
)

// Review of a foodtruck. Title and Content are both set or both empty;
// a bare star rating is allowed.
type Review struct {
	gorm.Model
	Rating  int    `json:"rating"` // 1..5
	Title   string `json:"title"`
	Content string `json:"content"`

	UserID      uint      `json:"userId"`
	User        User      `json:"-"`
	FoodtruckID uint      `json:"foodtruckId"`
	Foodtruck   Foodtruck `json:"-"`

	// empty for a review of the truck itself, otherwise the reviewed item
	FoodName string `json:"foodName"`
}
