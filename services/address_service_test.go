package services

import (
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAddressCanonicalizes(t *testing.T) {
	a := &entity.Address{
		PostalCode:  " 3500 ",
		City:        "sint-truiden",
		Street:      "grote markt",
		HouseNumber: " 4 ",
		Bus:         "b",
	}
	FormatAddress(a)

	assert.Equal(t, "3500", a.PostalCode)
	assert.Equal(t, "Sint-Truiden", a.City)
	assert.Equal(t, "Grote Markt", a.Street)
	assert.Equal(t, "4", a.HouseNumber)
	assert.Equal(t, "B", a.Bus)
}

func TestFormatAddressIsIdempotent(t *testing.T) {
	a := &entity.Address{PostalCode: "3500", City: "sint-TRUIDEN", Street: "grote markt", HouseNumber: "4", Bus: ""}
	FormatAddress(a)
	once := *a
	FormatAddress(a)
	assert.Equal(t, once, *a)
}

func TestFormatAddressEmptyBusSentinel(t *testing.T) {
	a := &entity.Address{Bus: "  "}
	FormatAddress(a)
	assert.Equal(t, "/", a.Bus)
}

func TestValidateAddressFieldCodes(t *testing.T) {
	cases := []struct {
		name  string
		addr  entity.Address
		field string
	}{
		{"numeric city", entity.Address{City: "Hasselt1", Street: "Markt", PostalCode: "3500", HouseNumber: "1"}, "city"},
		{"empty street", entity.Address{City: "Hasselt", Street: "", PostalCode: "3500", HouseNumber: "1"}, "street"},
		{"alpha postal code", entity.Address{City: "Hasselt", Street: "Markt", PostalCode: "35A0", HouseNumber: "1"}, "postalCode"},
		{"missing house number", entity.Address{City: "Hasselt", Street: "Markt", PostalCode: "3500", HouseNumber: ""}, "houseNumber"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAddress(&tc.addr)
			ie, ok := apperr.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}

func TestAddressResolveDedups(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repository.NewAddressRepository(db))

	first, err := svc.Resolve(&AddressIn{PostalCode: "3500", City: "Hasselt", Street: "Grote Markt", HouseNumber: "4"})
	require.NoError(t, err)

	// differently cased and spaced, same address after formatting
	second, err := svc.Resolve(&AddressIn{PostalCode: " 3500", City: "hasselt", Street: "GROTE MARKT", HouseNumber: "4", Bus: ""})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Address{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddressResolveRejectsInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repository.NewAddressRepository(db))

	_, err := svc.Resolve(&AddressIn{PostalCode: "abc", City: "Hasselt", Street: "Markt", HouseNumber: "4"})
	ie, ok := apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "postalCode", ie.Field)

	var count int64
	require.NoError(t, db.Model(&entity.Address{}).Count(&count).Error)
	assert.Zero(t, count)
}
