package entity

import (
	"gorm.io/gorm"
)

type Foodtruck struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	Banner     []byte `gorm:"type:blob" json:"-"`
	BannerType string `json:"-"`
	BannerSize int64  `json:"-"`

	AddressID uint    `json:"addressId"`
	Address   Address `json:"-"`

	OwnerID uint `json:"ownerId"` // users.id
	Owner   User `json:"-"`

	Tags            []FoodtruckTag   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tags"`
	OpenTimes       []OpenTime       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FutureLocations []FutureLocation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FoodItems       []FoodItem       `json:"-"`
	Workers         []User           `gorm:"many2many:foodtruck_workers;" json:"-"`
	Orders          []Order          `json:"-"`
	Reviews         []Review         `json:"-"`
	ChatRooms       []ChatRoom       `json:"-"`
}
