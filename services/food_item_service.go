package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"gorm.io/gorm"
)

const (
	maxPrimaryImageBytes = 3 << 20
	maxTotalMediaBytes   = 10 << 20
)

type FoodItemService struct {
	DB        *gorm.DB
	Repo      *repository.FoodItemRepository
	TruckRepo *repository.FoodtruckRepository
}

func NewFoodItemService(db *gorm.DB, repo *repository.FoodItemRepository, truckRepo *repository.FoodtruckRepository) *FoodItemService {
	return &FoodItemService{DB: db, Repo: repo, TruckRepo: truckRepo}
}

type FoodItemIn struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"` // cents
	Ingredients []string `json:"ingredients"`
	ImageB64    string   `json:"image"`
}

func formatFoodItemIn(in *FoodItemIn) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	for i := range in.Ingredients {
		in.Ingredients[i] = titleCase(in.Ingredients[i])
	}
}

// validateFoodItemIn enforces the menu rules; requireImage is false on
// updates that keep the stored image.
func validateFoodItemIn(in *FoodItemIn, requireImage bool) error {
	if in.Name == "" || utf8.RuneCountInString(in.Name) > 50 || !foodNameRe.MatchString(in.Name) {
		return apperr.Invalid("name", "name must be at most 50 characters of letters, digits, spaces and dashes")
	}
	if utf8.RuneCountInString(in.Description) > 500 {
		return apperr.Invalid("description", "description is at most 500 characters")
	}
	if in.Price <= 0 {
		return apperr.Invalid("price", "price must be greater than zero")
	}
	seen := make(map[string]bool, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		if ing == "" {
			return apperr.Invalid("ingredients", "ingredients may not be empty")
		}
		if utf8.RuneCountInString(ing) > 50 || !ingredientRe.MatchString(ing) {
			return apperr.Invalid("ingredients", "ingredients are at most 50 characters of letters, spaces and dashes")
		}
		if seen[ing] {
			return apperr.Invalid("ingredients", "duplicate ingredient: "+ing)
		}
		seen[ing] = true
	}
	if requireImage && in.ImageB64 == "" {
		return apperr.Invalid("image", "a primary image is required")
	}
	if in.ImageB64 != "" && utils.Base64ByteSize(in.ImageB64) > maxPrimaryImageBytes {
		return apperr.Invalid("image", "primary image may be at most 3MB")
	}
	return nil
}

func (s *FoodItemService) requireStaff(truckID, userID uint) error {
	ok, err := s.TruckRepo.IsStaff(truckID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrUnauthorizedWorker
	}
	return nil
}

func (s *FoodItemService) ListByTruck(truckID uint) ([]entity.FoodItem, error) {
	return s.Repo.FindByTruck(truckID)
}

func (s *FoodItemService) Get(truckID uint, name string) (*entity.FoodItem, error) {
	item, err := s.Repo.FindByName(truckID, strings.TrimSpace(name))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrItemNotFound
	}
	return item, err
}

func (s *FoodItemService) Create(userID, truckID uint, in *FoodItemIn) (*entity.FoodItem, error) {
	if err := s.requireStaff(truckID, userID); err != nil {
		return nil, err
	}
	formatFoodItemIn(in)
	if err := validateFoodItemIn(in, true); err != nil {
		return nil, err
	}

	exists, err := s.Repo.Exists(truckID, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Invalid("name", "the foodtruck already has an item with that name")
	}

	data, mime, err := utils.DecodeBase64(in.ImageB64)
	if err != nil {
		return nil, apperr.Invalid("image", "image is not valid base64")
	}

	item := &entity.FoodItem{
		FoodtruckID: truckID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       data,
		ImageType:   mime,
		ImageSize:   int64(len(data)),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, item); err != nil {
			return err
		}
		return s.Repo.ReplaceIngredients(tx, truckID, item.Name, in.Ingredients)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByName(truckID, item.Name)
}

// Update edits everything but the name. A changed name goes through Rename.
func (s *FoodItemService) Update(userID, truckID uint, name string, in *FoodItemIn) (*entity.FoodItem, error) {
	if err := s.requireStaff(truckID, userID); err != nil {
		return nil, err
	}
	item, err := s.Get(truckID, name)
	if err != nil {
		return nil, err
	}

	in.Name = item.Name // name edits are a rename, not an update
	formatFoodItemIn(in)
	if err := validateFoodItemIn(in, false); err != nil {
		return nil, err
	}

	item.Description = in.Description
	item.Price = in.Price
	if in.ImageB64 != "" {
		data, mime, err := utils.DecodeBase64(in.ImageB64)
		if err != nil {
			return nil, apperr.Invalid("image", "image is not valid base64")
		}
		item.Image = data
		item.ImageType = mime
		item.ImageSize = int64(len(data))
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		item.Ingredients = nil
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return s.Repo.ReplaceIngredients(tx, truckID, item.Name, in.Ingredients)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByName(truckID, item.Name)
}

// Rename copies the item under the new name, repoints the name-keyed
// children, then deletes the old row in one transaction, so a failure
// anywhere leaves the old item intact.
func (s *FoodItemService) Rename(userID, truckID uint, oldName, newName string) (*entity.FoodItem, error) {
	if err := s.requireStaff(truckID, userID); err != nil {
		return nil, err
	}

	newName = strings.TrimSpace(newName)
	if newName == "" || utf8.RuneCountInString(newName) > 50 || !foodNameRe.MatchString(newName) {
		return nil, apperr.Invalid("name", "name must be at most 50 characters of letters, digits, spaces and dashes")
	}

	old, err := s.Get(truckID, oldName)
	if err != nil {
		return nil, err
	}
	if old.Name == newName {
		return old, nil // no-op update, skip the copy dance
	}

	exists, err := s.Repo.Exists(truckID, newName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Invalid("name", "the foodtruck already has an item with that name")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		replacement := entity.FoodItem{
			FoodtruckID: truckID,
			Name:        newName,
			Description: old.Description,
			Price:       old.Price,
			Image:       old.Image,
			ImageType:   old.ImageType,
			ImageSize:   old.ImageSize,
			Rating:      old.Rating,
		}
		if err := s.Repo.Create(tx, &replacement); err != nil {
			return err
		}
		if err := s.Repo.MoveChildren(tx, truckID, old.Name, newName); err != nil {
			return err
		}
		return s.Repo.Delete(tx, truckID, old.Name)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByName(truckID, newName)
}

func (s *FoodItemService) Delete(userID, truckID uint, name string) error {
	if err := s.requireStaff(truckID, userID); err != nil {
		return err
	}
	item, err := s.Get(truckID, name)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, truckID, item.Name)
	})
}

// ----- media -----

type MediaIn struct {
	Kind    string `json:"kind"` // "image" | "video"
	DataB64 string `json:"data"`
}

// AddMedia caps the aggregate media size per item (primary image included)
// at 10MB.
func (s *FoodItemService) AddMedia(userID, truckID uint, foodName string, in *MediaIn) (*entity.Media, error) {
	if err := s.requireStaff(truckID, userID); err != nil {
		return nil, err
	}
	item, err := s.Get(truckID, foodName)
	if err != nil {
		return nil, err
	}
	if in.Kind != "image" && in.Kind != "video" {
		return nil, apperr.Invalid("kind", "media kind must be image or video")
	}

	size := utils.Base64ByteSize(in.DataB64)
	current, err := s.Repo.MediaSizeSum(truckID, item.Name)
	if err != nil {
		return nil, err
	}
	if current+item.ImageSize+size > maxTotalMediaBytes {
		return nil, apperr.Invalid("media", "total media may be at most 10MB")
	}

	data, mime, err := utils.DecodeBase64(in.DataB64)
	if err != nil {
		return nil, apperr.Invalid("media", "media is not valid base64")
	}

	m := &entity.Media{
		FoodtruckID: truckID,
		FoodName:    item.Name,
		Kind:        in.Kind,
		Data:        data,
		MimeType:    mime,
		Size:        int64(len(data)),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AddMedia(tx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *FoodItemService) RemoveMedia(userID, truckID uint, foodName string, mediaID uint) error {
	if err := s.requireStaff(truckID, userID); err != nil {
		return err
	}
	return s.Repo.RemoveMedia(truckID, foodName, mediaID)
}
