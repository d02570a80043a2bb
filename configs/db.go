package configs

import (
	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Address{},
		&entity.Foodtruck{}, &entity.FoodtruckTag{},
		&entity.OpenTime{}, &entity.FutureLocation{},
		&entity.FoodItem{}, &entity.Ingredient{}, &entity.Media{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.WorkInvitation{},
	)
}
