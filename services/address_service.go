package services

import (
	"strings"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

type AddressIn struct {
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Bus         string `json:"bus"`
}

// FormatAddress canonicalizes an address: title-cased city/street,
// uppercased postal code and bus, "/" sentinel for a blank bus. Runs on
// stored data too before any equality comparison.
func FormatAddress(a *entity.Address) {
	a.City = titleCase(a.City)
	a.Street = titleCase(a.Street)
	a.PostalCode = strings.ToUpper(strings.TrimSpace(a.PostalCode))
	a.HouseNumber = strings.TrimSpace(a.HouseNumber)
	a.Bus = strings.ToUpper(strings.TrimSpace(a.Bus))
	if a.Bus == "" {
		a.Bus = "/"
	}
}

// ValidateAddress assumes FormatAddress already ran.
func ValidateAddress(a *entity.Address) error {
	if a.City == "" || !lettersDashesRe.MatchString(a.City) {
		return apperr.Invalid("city", "city may only contain letters and dashes")
	}
	if a.Street == "" || !lettersDashesRe.MatchString(a.Street) {
		return apperr.Invalid("street", "street may only contain letters and dashes")
	}
	if a.PostalCode == "" || !digitsRe.MatchString(a.PostalCode) {
		return apperr.Invalid("postalCode", "postal code must be numeric")
	}
	if a.HouseNumber == "" {
		return apperr.Invalid("houseNumber", "house number is required")
	}
	return nil
}

// Resolve formats, validates and dedups: an identical row is reused, a new
// one is only inserted on a miss.
func (s *AddressService) Resolve(in *AddressIn) (*entity.Address, error) {
	a := &entity.Address{
		PostalCode:  in.PostalCode,
		City:        in.City,
		Street:      in.Street,
		HouseNumber: in.HouseNumber,
		Bus:         in.Bus,
	}
	FormatAddress(a)
	if err := ValidateAddress(a); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreate(a)
}
