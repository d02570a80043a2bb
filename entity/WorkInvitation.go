package entity

import (
	"gorm.io/gorm"
)

// WorkInvitation is a pending staff offer, accepted or declined via the
// token links mailed to the invitee.
type WorkInvitation struct {
	gorm.Model
	FoodtruckID uint      `json:"foodtruckId"`
	Foodtruck   Foodtruck `json:"-"`

	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Token  string `gorm:"uniqueIndex" json:"-"`
	Status string `gorm:"default:pending" json:"status"` // pending | accepted | declined
}
