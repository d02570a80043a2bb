package entity

import (
	"time"
)

// FoodtruckWorker is the staff join table (many2many Foodtruck<->User),
// registered with SetupJoinTable in main so the HiredAt column migrates.
type FoodtruckWorker struct {
	FoodtruckID uint      `gorm:"primaryKey" json:"foodtruckId"`
	UserID      uint      `gorm:"primaryKey" json:"userId"`
	HiredAt     time.Time `gorm:"autoCreateTime" json:"hiredAt"`
}
