// repository/food_item_repository.go
package repository

import (
	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type FoodItemRepository struct {
	DB *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{DB: db}
}

func (r *FoodItemRepository) FindByTruck(truckID uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Preload("Ingredients").
		Where("foodtruck_id = ?", truckID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// FindByName resolves the natural key (foodtruck, name).
func (r *FoodItemRepository) FindByName(truckID uint, name string) (*entity.FoodItem, error) {
	var item entity.FoodItem
	err := r.DB.Preload("Ingredients").
		Where("foodtruck_id = ? AND name = ?", truckID, name).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodItemRepository) Exists(truckID uint, name string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.FoodItem{}).
		Where("foodtruck_id = ? AND name = ?", truckID, name).
		Count(&count).Error
	return count > 0, err
}

func (r *FoodItemRepository) Create(tx *gorm.DB, item *entity.FoodItem) error {
	return tx.Create(item).Error
}

func (r *FoodItemRepository) Save(item *entity.FoodItem) error {
	return r.DB.Save(item).Error
}

func (r *FoodItemRepository) Delete(tx *gorm.DB, truckID uint, name string) error {
	return tx.Where("foodtruck_id = ? AND name = ?", truckID, name).
		Delete(&entity.FoodItem{}).Error
}

// MoveChildren repoints the name-keyed child rows (ingredients, media,
// frozen order lines) from oldName to newName during a rename.
func (r *FoodItemRepository) MoveChildren(tx *gorm.DB, truckID uint, oldName, newName string) error {
	if err := tx.Model(&entity.Ingredient{}).
		Where("foodtruck_id = ? AND food_name = ?", truckID, oldName).
		Update("food_name", newName).Error; err != nil {
		return err
	}
	if err := tx.Model(&entity.Media{}).
		Where("foodtruck_id = ? AND food_name = ?", truckID, oldName).
		Update("food_name", newName).Error; err != nil {
		return err
	}
	return tx.Model(&entity.OrderItem{}).
		Where("foodtruck_id = ? AND food_name = ?", truckID, oldName).
		Update("food_name", newName).Error
}

func (r *FoodItemRepository) ReplaceIngredients(tx *gorm.DB, truckID uint, foodName string, names []string) error {
	if err := tx.Where("foodtruck_id = ? AND food_name = ?", truckID, foodName).
		Delete(&entity.Ingredient{}).Error; err != nil {
		return err
	}
	for _, n := range names {
		row := entity.Ingredient{FoodtruckID: truckID, FoodName: foodName, Name: n}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *FoodItemRepository) Media(truckID uint, foodName string) ([]entity.Media, error) {
	var rows []entity.Media
	err := r.DB.Where("foodtruck_id = ? AND food_name = ?", truckID, foodName).
		Find(&rows).Error
	return rows, err
}

func (r *FoodItemRepository) MediaSizeSum(truckID uint, foodName string) (int64, error) {
	var sum int64
	err := r.DB.Model(&entity.Media{}).
		Where("foodtruck_id = ? AND food_name = ?", truckID, foodName).
		Select("COALESCE(SUM(size), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *FoodItemRepository) AddMedia(tx *gorm.DB, m *entity.Media) error {
	return tx.Create(m).Error
}

func (r *FoodItemRepository) RemoveMedia(truckID uint, foodName string, mediaID uint) error {
	return r.DB.Where("id = ? AND foodtruck_id = ? AND food_name = ?", mediaID, truckID, foodName).
		Delete(&entity.Media{}).Error
}

// UpdateRating recomputes the item's rating column.
func (r *FoodItemRepository) UpdateRating(truckID uint, name string, rating float64) error {
	return r.DB.Model(&entity.FoodItem{}).
		Where("foodtruck_id = ? AND name = ?", truckID, name).
		Update("rating", rating).Error
}
