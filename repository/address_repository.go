package repository

import (
	"errors"

	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

// FindByValue looks an address up by its (already canonicalized) content.
func (r *AddressRepository) FindByValue(a *entity.Address) (*entity.Address, error) {
	var found entity.Address
	err := r.DB.Where(
		"postal_code = ? AND city = ? AND street = ? AND house_number = ? AND bus = ?",
		a.PostalCode, a.City, a.Street, a.HouseNumber, a.Bus,
	).First(&found).Error
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// GetOrCreate returns the existing row for an identical address, inserting
// one only on a miss. Check-then-insert is optimistic: two concurrent
// callers can both miss and both insert.
func (r *AddressRepository) GetOrCreate(a *entity.Address) (*entity.Address, error) {
	found, err := r.FindByValue(a)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.DB.Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AddressRepository) FindByID(id uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
