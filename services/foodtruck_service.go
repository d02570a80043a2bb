package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"gorm.io/gorm"
)

const maxBannerBytes = 5 << 20

type FoodtruckService struct {
	DB      *gorm.DB
	Repo    *repository.FoodtruckRepository
	AddrSvc *AddressService
}

func NewFoodtruckService(db *gorm.DB, repo *repository.FoodtruckRepository, addrSvc *AddressService) *FoodtruckService {
	return &FoodtruckService{DB: db, Repo: repo, AddrSvc: addrSvc}
}

type FoodtruckIn struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Tags        []string  `json:"tags"`
	Address     AddressIn `json:"address"`
	BannerB64   string    `json:"banner"`
}

func formatFoodtruckIn(in *FoodtruckIn) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.PhoneNumber = formatPhoneNumber(in.PhoneNumber)
	for i := range in.Tags {
		in.Tags[i] = titleCase(in.Tags[i])
	}
}

func validateFoodtruckIn(in *FoodtruckIn) error {
	if in.Name == "" || utf8.RuneCountInString(in.Name) > 50 {
		return apperr.Invalid("name", "name is required and at most 50 characters")
	}
	if utf8.RuneCountInString(in.Description) > 500 {
		return apperr.Invalid("description", "description is at most 500 characters")
	}
	if in.Email != "" && !emailRe.MatchString(in.Email) {
		return apperr.Invalid("email", "invalid email address")
	}
	if in.PhoneNumber != "" && !digitsRe.MatchString(strings.TrimPrefix(in.PhoneNumber, "+")) {
		return apperr.Invalid("phoneNumber", "phone number may only contain digits and separators")
	}
	for _, t := range in.Tags {
		if t == "" || utf8.RuneCountInString(t) > 50 || !lettersDashesRe.MatchString(t) {
			return apperr.Invalid("tags", "tags may only contain letters and dashes, at most 50 characters")
		}
	}
	if in.BannerB64 != "" && utils.Base64ByteSize(in.BannerB64) > maxBannerBytes {
		return apperr.Invalid("banner", "banner may be at most 5MB")
	}
	return nil
}

// Create builds the truck and makes its creator both owner and staff.
func (s *FoodtruckService) Create(ownerID uint, in *FoodtruckIn) (*entity.Foodtruck, error) {
	formatFoodtruckIn(in)
	if err := validateFoodtruckIn(in); err != nil {
		return nil, err
	}

	addr, err := s.AddrSvc.Resolve(&in.Address)
	if err != nil {
		return nil, err
	}

	truck := &entity.Foodtruck{
		Name:        in.Name,
		Description: in.Description,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		AddressID:   addr.ID,
		OwnerID:     ownerID,
	}
	for _, t := range in.Tags {
		truck.Tags = append(truck.Tags, entity.FoodtruckTag{Name: t})
	}
	if in.BannerB64 != "" {
		data, mime, err := utils.DecodeBase64(in.BannerB64)
		if err != nil {
			return nil, apperr.Invalid("banner", "banner is not valid base64")
		}
		truck.Banner = data
		truck.BannerType = mime
		truck.BannerSize = int64(len(data))
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, truck); err != nil {
			return err
		}
		return s.Repo.AddWorker(tx, truck.ID, ownerID)
	})
	if err != nil {
		return nil, err
	}
	return truck, nil
}

// UpdateProfile is owner-only.
func (s *FoodtruckService) UpdateProfile(userID, truckID uint, in *FoodtruckIn) (*entity.Foodtruck, error) {
	ok, err := s.Repo.IsOwnedBy(truckID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}

	truck, err := s.Repo.FindByID(truckID)
	if err != nil {
		return nil, err
	}

	formatFoodtruckIn(in)
	if err := validateFoodtruckIn(in); err != nil {
		return nil, err
	}
	addr, err := s.AddrSvc.Resolve(&in.Address)
	if err != nil {
		return nil, err
	}

	truck.Name = in.Name
	truck.Description = in.Description
	truck.Email = in.Email
	truck.PhoneNumber = in.PhoneNumber
	truck.AddressID = addr.ID
	if in.BannerB64 != "" {
		data, mime, err := utils.DecodeBase64(in.BannerB64)
		if err != nil {
			return nil, apperr.Invalid("banner", "banner is not valid base64")
		}
		truck.Banner = data
		truck.BannerType = mime
		truck.BannerSize = int64(len(data))
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("foodtruck_id = ?", truckID).Delete(&entity.FoodtruckTag{}).Error; err != nil {
			return err
		}
		for _, t := range in.Tags {
			if err := tx.Create(&entity.FoodtruckTag{FoodtruckID: truckID, Name: t}).Error; err != nil {
				return err
			}
		}
		truck.Tags = nil
		return tx.Save(truck).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(truckID)
}

func (s *FoodtruckService) Get(id uint) (*entity.Foodtruck, error) {
	return s.Repo.FindByID(id)
}

func (s *FoodtruckService) List() ([]entity.Foodtruck, error) {
	return s.Repo.FindAll()
}

func (s *FoodtruckService) Workers(truckID uint) ([]entity.User, error) {
	return s.Repo.Workers(truckID)
}

// ----- open times -----

var dayCodes = map[string]string{
	"mon": "Mon", "monday": "Mon",
	"tue": "Tue", "tuesday": "Tue",
	"wed": "Wed", "wednesday": "Wed",
	"thu": "Thu", "thursday": "Thu",
	"fri": "Fri", "friday": "Fri",
	"sat": "Sat", "saturday": "Sat",
	"sun": "Sun", "sunday": "Sun",
}

type OpenTimeIn struct {
	Day  string `json:"day"`
	From int    `json:"from"` // minutes since midnight
	To   int    `json:"to"`
}

// NormalizeDay folds any casing or full day name to the 3-letter code.
func NormalizeDay(day string) (string, bool) {
	code, ok := dayCodes[strings.ToLower(strings.TrimSpace(day))]
	return code, ok
}

// ValidateOpenTimes checks every row and rejects pairwise [from,to)
// overlaps on the same day. n is small, the O(n²) scan is fine.
func ValidateOpenTimes(rows []entity.OpenTime) error {
	for i := range rows {
		code, ok := NormalizeDay(rows[i].Day)
		if !ok {
			return apperr.Invalid("openTimes", "unknown day: "+rows[i].Day)
		}
		rows[i].Day = code
		if rows[i].From < 0 || rows[i].To > 24*60 || rows[i].From >= rows[i].To {
			return apperr.Invalid("openTimes", "opening time must start before it ends")
		}
	}
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[i].Day != rows[j].Day {
				continue
			}
			if rows[i].From < rows[j].To && rows[j].From < rows[i].To {
				return apperr.Invalid("openTimes", "opening times overlap on "+rows[i].Day)
			}
		}
	}
	return nil
}

func (s *FoodtruckService) SetOpenTimes(userID, truckID uint, ins []OpenTimeIn) ([]entity.OpenTime, error) {
	ok, err := s.Repo.IsOwnedBy(truckID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}

	rows := make([]entity.OpenTime, 0, len(ins))
	for _, in := range ins {
		rows = append(rows, entity.OpenTime{Day: in.Day, From: in.From, To: in.To})
	}
	if err := ValidateOpenTimes(rows); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ReplaceOpenTimes(tx, truckID, rows)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.OpenTimes(truckID)
}

// ----- future locations -----

type FutureLocationIn struct {
	Date    string    `json:"date"` // YYYY-MM-DD
	Address AddressIn `json:"address"`
}

func (s *FoodtruckService) AddFutureLocation(userID, truckID uint, in *FutureLocationIn) (*entity.FutureLocation, error) {
	ok, err := s.Repo.IsOwnedBy(truckID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}

	// time.Parse rejects impossible dates like Feb 30.
	date, err := time.Parse("2006-01-02", strings.TrimSpace(in.Date))
	if err != nil {
		return nil, apperr.Invalid("date", "date must be a real calendar date (YYYY-MM-DD)")
	}

	existing, err := s.Repo.FutureLocations(truckID)
	if err != nil {
		return nil, err
	}
	for _, fl := range existing {
		if fl.Date.Equal(date) {
			return nil, apperr.Invalid("date", "the foodtruck already has a location on that date")
		}
	}

	addr, err := s.AddrSvc.Resolve(&in.Address)
	if err != nil {
		return nil, err
	}

	fl := &entity.FutureLocation{FoodtruckID: truckID, Date: date, AddressID: addr.ID}
	if err := s.Repo.AddFutureLocation(fl); err != nil {
		return nil, err
	}
	return fl, nil
}

func (s *FoodtruckService) RemoveFutureLocation(userID, truckID, id uint) error {
	ok, err := s.Repo.IsOwnedBy(truckID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}
	return s.Repo.RemoveFutureLocation(truckID, id)
}
