package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	Avatar     []byte `json:"-" gorm:"column:avatar"`
	AvatarType string `json:"-" gorm:"column:avatar_type"`
	AvatarSize int64  `json:"-" gorm:"column:avatar_size"`

	// Relations, preload only when needed
	FoodtrucksOwned []Foodtruck      `gorm:"foreignKey:OwnerID" json:"-"`
	StaffOf         []Foodtruck      `gorm:"many2many:foodtruck_workers;" json:"-"`
	Orders          []Order          `gorm:"foreignKey:ClientID" json:"-"`
	Reviews         []Review         `json:"-"`
	MessagesSent    []Message        `gorm:"foreignKey:SenderID" json:"-"`
	Invitations     []WorkInvitation `gorm:"foreignKey:UserID" json:"-"`
}
