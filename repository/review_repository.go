package repository

import (
	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByTruck(truckID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Preload("User").
		Where("foodtruck_id = ?", truckID).
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) AverageRating(truckID uint) (float64, error) {
	var avg float64
	err := r.DB.Model(&entity.Review{}).
		Where("foodtruck_id = ?", truckID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
