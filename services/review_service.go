package services

import (
	"strings"
	"unicode/utf8"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	TruckRepo *repository.FoodtruckRepository
	FoodRepo  *repository.FoodItemRepository
}

func NewReviewService(repo *repository.ReviewRepository, truckRepo *repository.FoodtruckRepository, foodRepo *repository.FoodItemRepository) *ReviewService {
	return &ReviewService{Repo: repo, TruckRepo: truckRepo, FoodRepo: foodRepo}
}

type ReviewIn struct {
	Rating   int    `json:"rating"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	FoodName string `json:"foodName"` // optional, reviews a single item
}

func formatReviewIn(in *ReviewIn) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.FoodName = strings.TrimSpace(in.FoodName)
}

func validateReviewIn(in *ReviewIn) error {
	if in.Rating < 1 || in.Rating > 5 {
		return apperr.Invalid("rating", "rating must be between 1 and 5")
	}
	// a bare star rating is fine, but title and content come as a pair
	if (in.Title == "") != (in.Content == "") {
		return apperr.Invalid("title", "title and content must be given together")
	}
	if in.Title != "" {
		if utf8.RuneCountInString(in.Title) > 255 || !reviewTitleRe.MatchString(in.Title) {
			return apperr.Invalid("title", "title is at most 255 characters of letters, digits and basic punctuation")
		}
		if utf8.RuneCountInString(in.Content) > 1000 {
			return apperr.Invalid("content", "content is at most 1000 characters")
		}
	}
	return nil
}

// Create rejects staff reviewing their own foodtruck, then recomputes the
// relevant rating aggregate.
func (s *ReviewService) Create(userID, truckID uint, in *ReviewIn) (*entity.Review, error) {
	formatReviewIn(in)
	if err := validateReviewIn(in); err != nil {
		return nil, err
	}

	staff, err := s.TruckRepo.IsStaff(truckID, userID)
	if err != nil {
		return nil, err
	}
	if staff {
		return nil, apperr.ErrForbidden
	}

	if in.FoodName != "" {
		if _, err := s.FoodRepo.FindByName(truckID, in.FoodName); err != nil {
			return nil, apperr.ErrItemNotFound
		}
	}

	review := &entity.Review{
		Rating:      in.Rating,
		Title:       in.Title,
		Content:     in.Content,
		UserID:      userID,
		FoodtruckID: truckID,
		FoodName:    in.FoodName,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}

	if in.FoodName != "" {
		if avg, err := s.itemAverage(truckID, in.FoodName); err == nil {
			_ = s.FoodRepo.UpdateRating(truckID, in.FoodName, avg)
		}
	}
	return review, nil
}

func (s *ReviewService) itemAverage(truckID uint, foodName string) (float64, error) {
	reviews, err := s.Repo.FindByTruck(truckID)
	if err != nil {
		return 0, err
	}
	sum, n := 0, 0
	for _, r := range reviews {
		if r.FoodName == foodName {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

func (s *ReviewService) ListForTruck(truckID uint) ([]entity.Review, float64, error) {
	reviews, err := s.Repo.FindByTruck(truckID)
	if err != nil {
		return nil, 0, err
	}
	avg, err := s.Repo.AverageRating(truckID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, avg, nil
}
