// repository/foodtruck_repository.go
package repository

import (
	"time"

	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type FoodtruckRepository struct {
	DB *gorm.DB
}

func NewFoodtruckRepository(db *gorm.DB) *FoodtruckRepository {
	return &FoodtruckRepository{DB: db}
}

func (r *FoodtruckRepository) FindAll() ([]entity.Foodtruck, error) {
	var trucks []entity.Foodtruck
	err := r.DB.
		Preload("Address").
		Preload("Tags").
		Find(&trucks).Error
	return trucks, err
}

func (r *FoodtruckRepository) FindByID(id uint) (*entity.Foodtruck, error) {
	var truck entity.Foodtruck
	err := r.DB.
		Preload("Address").
		Preload("Tags").
		Preload("OpenTimes").
		Preload("FutureLocations").
		Preload("FutureLocations.Address").
		First(&truck, id).Error
	if err != nil {
		return nil, err
	}
	return &truck, nil
}

func (r *FoodtruckRepository) Create(tx *gorm.DB, truck *entity.Foodtruck) error {
	return tx.Create(truck).Error
}

func (r *FoodtruckRepository) Update(truck *entity.Foodtruck) error {
	return r.DB.Save(truck).Error
}

func (r *FoodtruckRepository) IsOwnedBy(truckID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Foodtruck{}).
		Where("id = ? AND owner_id = ?", truckID, userID).
		Count(&count).Error
	return count > 0, err
}

// IsStaff reports whether the user sits in the truck's worker join table.
// The owner is inserted there at creation, so ownership implies staff.
func (r *FoodtruckRepository) IsStaff(truckID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Table("foodtruck_workers").
		Where("foodtruck_id = ? AND user_id = ?", truckID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *FoodtruckRepository) AddWorker(tx *gorm.DB, truckID, userID uint) error {
	return tx.Exec(
		"INSERT INTO foodtruck_workers (foodtruck_id, user_id, hired_at) VALUES (?, ?, ?)",
		truckID, userID, time.Now(),
	).Error
}

func (r *FoodtruckRepository) Workers(truckID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN foodtruck_workers fw ON fw.user_id = users.id").
		Where("fw.foodtruck_id = ?", truckID).
		Find(&users).Error
	return users, err
}

// ---------------- search lookups ----------------
// Three independent substring matches. The service unions them without
// de-duplicating; a truck matching on two dimensions appears twice.

func (r *FoodtruckRepository) FindByNameLike(q string) ([]entity.Foodtruck, error) {
	var trucks []entity.Foodtruck
	err := r.DB.Preload("Address").Preload("Tags").
		Where("name LIKE ?", "%"+q+"%").
		Find(&trucks).Error
	return trucks, err
}

func (r *FoodtruckRepository) FindByTagLike(q string) ([]entity.Foodtruck, error) {
	var trucks []entity.Foodtruck
	err := r.DB.Preload("Address").Preload("Tags").
		Where("id IN (?)",
			r.DB.Table("foodtruck_tags").Select("foodtruck_id").Where("name LIKE ?", "%"+q+"%")).
		Find(&trucks).Error
	return trucks, err
}

func (r *FoodtruckRepository) FindByCityLike(q string) ([]entity.Foodtruck, error) {
	var trucks []entity.Foodtruck
	err := r.DB.Preload("Address").Preload("Tags").
		Where("address_id IN (?)",
			r.DB.Table("addresses").Select("id").Where("city LIKE ?", "%"+q+"%")).
		Find(&trucks).Error
	return trucks, err
}

// ---------------- open times / future locations ----------------

func (r *FoodtruckRepository) OpenTimes(truckID uint) ([]entity.OpenTime, error) {
	var rows []entity.OpenTime
	err := r.DB.Where("foodtruck_id = ?", truckID).Find(&rows).Error
	return rows, err
}

func (r *FoodtruckRepository) ReplaceOpenTimes(tx *gorm.DB, truckID uint, rows []entity.OpenTime) error {
	if err := tx.Where("foodtruck_id = ?", truckID).Delete(&entity.OpenTime{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].FoodtruckID = truckID
		if err := tx.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *FoodtruckRepository) FutureLocations(truckID uint) ([]entity.FutureLocation, error) {
	var rows []entity.FutureLocation
	err := r.DB.Preload("Address").
		Where("foodtruck_id = ?", truckID).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *FoodtruckRepository) AddFutureLocation(fl *entity.FutureLocation) error {
	return r.DB.Create(fl).Error
}

func (r *FoodtruckRepository) RemoveFutureLocation(truckID uint, id uint) error {
	return r.DB.Where("id = ? AND foodtruck_id = ?", id, truckID).
		Delete(&entity.FutureLocation{}).Error
}
