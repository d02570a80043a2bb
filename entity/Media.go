package entity

import (
	"gorm.io/gorm"
)

// Media is an extra image or video attached to a food item. The aggregate
// size per item (primary image included) is capped at save time.
type Media struct {
	gorm.Model
	FoodtruckID uint   `json:"foodtruckId"`
	FoodName    string `json:"foodName"`
	Kind        string `json:"kind"` // "image" | "video"

	Data     []byte `gorm:"type:blob" json:"-"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}
