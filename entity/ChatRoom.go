package entity

import (
	"time"

	"gorm.io/gorm"
)

// ChatRoom connects one client to one foodtruck's staff. LastMessageAt
// drives the room listing order.
type ChatRoom struct {
	gorm.Model
	FoodtruckID uint      `gorm:"uniqueIndex:idx_chat_rooms_truck_client" json:"foodtruckId"`
	Foodtruck   Foodtruck `json:"-"`

	ClientID uint `gorm:"uniqueIndex:idx_chat_rooms_truck_client" json:"clientId"`
	Client   User `gorm:"foreignKey:ClientID" json:"-"`

	LastMessageAt time.Time `json:"lastMessageAt"`

	Messages []Message `gorm:"foreignKey:RoomID" json:"-"`
}
