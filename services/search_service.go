package services

import (
	"strings"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
)

type SearchService struct {
	TruckRepo *repository.FoodtruckRepository
}

func NewSearchService(truckRepo *repository.FoodtruckRepository) *SearchService {
	return &SearchService{TruckRepo: truckRepo}
}

// Search unions substring matches on name, tag and city. The union is NOT
// de-duplicated: a truck matching on two dimensions appears twice, which
// the frontend relies on.
func (s *SearchService) Search(query string) ([]entity.Foodtruck, error) {
	query = strings.TrimSpace(query)
	if query == "" || !searchQueryRe.MatchString(query) {
		return nil, apperr.Invalid("query", "search terms may only contain letters, digits, spaces and dashes")
	}

	byName, err := s.TruckRepo.FindByNameLike(query)
	if err != nil {
		return nil, err
	}
	byTag, err := s.TruckRepo.FindByTagLike(query)
	if err != nil {
		return nil, err
	}
	byCity, err := s.TruckRepo.FindByCityLike(query)
	if err != nil {
		return nil, err
	}

	results := make([]entity.Foodtruck, 0, len(byName)+len(byTag)+len(byCity))
	results = append(results, byName...)
	results = append(results, byTag...)
	results = append(results, byCity...)

	if len(results) == 0 {
		return nil, apperr.ErrNoResults
	}
	return results, nil
}
