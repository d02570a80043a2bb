package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFoodItemService(db *gorm.DB) *FoodItemService {
	return NewFoodItemService(db, repository.NewFoodItemRepository(db), repository.NewFoodtruckRepository(db))
}

func b64(payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestFoodItemValidationFieldCodes(t *testing.T) {
	img := b64("fake image")
	cases := []struct {
		name  string
		in    FoodItemIn
		field string
	}{
		{"empty name", FoodItemIn{Name: "", Price: 100, ImageB64: img}, "name"},
		{"name too long", FoodItemIn{Name: "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeee", Price: 100, ImageB64: img}, "name"},
		{"name with symbols", FoodItemIn{Name: "Friet!", Price: 100, ImageB64: img}, "name"},
		{"zero price", FoodItemIn{Name: "Friet", Price: 0, ImageB64: img}, "price"},
		{"negative price", FoodItemIn{Name: "Friet", Price: -50, ImageB64: img}, "price"},
		{"empty ingredient", FoodItemIn{Name: "Friet", Price: 100, Ingredients: []string{""}, ImageB64: img}, "ingredients"},
		{"numeric ingredient", FoodItemIn{Name: "Friet", Price: 100, Ingredients: []string{"Zout2"}, ImageB64: img}, "ingredients"},
		{"duplicate ingredient", FoodItemIn{Name: "Friet", Price: 100, Ingredients: []string{"Zout", "Zout"}, ImageB64: img}, "ingredients"},
		{"missing image", FoodItemIn{Name: "Friet", Price: 100}, "image"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// ingredients are title-cased before validation, like real input
			formatFoodItemIn(&tc.in)
			err := validateFoodItemIn(&tc.in, true)
			ie, ok := apperr.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}

func TestFoodItemLengthLimitsCountCharacters(t *testing.T) {
	img := b64("fake image")

	// 50 accented letters are 100 bytes but still within the limit
	in := FoodItemIn{Name: strings.Repeat("é", 50), Price: 100, ImageB64: img}
	assert.NoError(t, validateFoodItemIn(&in, true))

	in = FoodItemIn{Name: strings.Repeat("é", 51), Price: 100, ImageB64: img}
	err := validateFoodItemIn(&in, true)
	ie, ok := apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "name", ie.Field)

	in = FoodItemIn{Name: "Friet", Description: strings.Repeat("ü", 500), Price: 100, ImageB64: img}
	assert.NoError(t, validateFoodItemIn(&in, true))

	in = FoodItemIn{Name: "Friet", Price: 100, Ingredients: []string{strings.Repeat("é", 51)}, ImageB64: img}
	err = validateFoodItemIn(&in, true)
	ie, ok = apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "ingredients", ie.Field)
}

func TestFoodItemCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")

	item, err := svc.Create(owner.ID, truck.ID, &FoodItemIn{
		Name:        " Friet ",
		Description: "Vers gesneden",
		Price:       350,
		Ingredients: []string{"aardappel", "zout"},
		ImageB64:    "data:image/png;base64," + b64("fake image"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Friet", item.Name)
	assert.Equal(t, "image/png", item.ImageType)
	assert.EqualValues(t, len("fake image"), item.ImageSize)
	require.Len(t, item.Ingredients, 2)
	assert.Equal(t, "Aardappel", item.Ingredients[0].Name)

	// duplicate names within one truck are rejected
	_, err = svc.Create(owner.ID, truck.ID, &FoodItemIn{Name: "Friet", Price: 400, ImageB64: b64("x")})
	ie, ok := apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "name", ie.Field)
}

func TestFoodItemCreateRequiresStaff(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	stranger := seedUser(t, db, "stranger@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")

	_, err := svc.Create(stranger.ID, truck.ID, &FoodItemIn{Name: "Friet", Price: 350, ImageB64: b64("x")})
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedWorker)
}

func TestFoodItemUpdateKeepsName(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	seedItem(t, db, truck.ID, "Friet", 350)

	// a different name in the payload is ignored, only Rename changes names
	item, err := svc.Update(owner.ID, truck.ID, "Friet", &FoodItemIn{
		Name:        "Grote Friet",
		Description: "Nu groter",
		Price:       400,
	})
	require.NoError(t, err)
	assert.Equal(t, "Friet", item.Name)
	assert.EqualValues(t, 400, item.Price)
	assert.Equal(t, "Nu groter", item.Description)
}

func TestFoodItemRenameMovesChildren(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	seedItem(t, db, truck.ID, "Friet", 350)

	require.NoError(t, db.Create(&entity.Ingredient{FoodtruckID: truck.ID, FoodName: "Friet", Name: "Aardappel"}).Error)
	require.NoError(t, db.Create(&entity.Media{FoodtruckID: truck.ID, FoodName: "Friet", Kind: "image", Data: []byte("m"), Size: 1}).Error)

	addr := seedAddress(t, db)
	o := seedOrder(t, db, truck.ID, client.ID, addr.ID)
	require.NoError(t, db.Create(&entity.OrderItem{OrderID: o.ID, FoodtruckID: truck.ID, FoodName: "Friet", Amount: 1, UnitPrice: 350}).Error)

	renamed, err := svc.Rename(owner.ID, truck.ID, "Friet", "Vlaamse Friet")
	require.NoError(t, err)
	assert.Equal(t, "Vlaamse Friet", renamed.Name)
	assert.EqualValues(t, 350, renamed.Price)

	// the old row is gone
	_, err = svc.Get(truck.ID, "Friet")
	assert.ErrorIs(t, err, apperr.ErrItemNotFound)

	// every name-keyed child followed the rename
	var ing entity.Ingredient
	require.NoError(t, db.Where("foodtruck_id = ?", truck.ID).First(&ing).Error)
	assert.Equal(t, "Vlaamse Friet", ing.FoodName)

	var med entity.Media
	require.NoError(t, db.Where("foodtruck_id = ?", truck.ID).First(&med).Error)
	assert.Equal(t, "Vlaamse Friet", med.FoodName)

	var line entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", o.ID).First(&line).Error)
	assert.Equal(t, "Vlaamse Friet", line.FoodName)
}

func TestFoodItemRenameToExistingName(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	seedItem(t, db, truck.ID, "Friet", 350)
	seedItem(t, db, truck.ID, "Burger", 800)

	_, err := svc.Rename(owner.ID, truck.ID, "Friet", "Burger")
	ie, ok := apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "name", ie.Field)

	// both items survive intact
	_, err = svc.Get(truck.ID, "Friet")
	assert.NoError(t, err)
	_, err = svc.Get(truck.ID, "Burger")
	assert.NoError(t, err)
}

func TestFoodItemRenameToSameNameIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	item := seedItem(t, db, truck.ID, "Friet", 350)

	renamed, err := svc.Rename(owner.ID, truck.ID, "Friet", "Friet")
	require.NoError(t, err)
	assert.Equal(t, item.ID, renamed.ID)
}

func TestFoodItemMediaAggregateCap(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodItemService(db)

	owner := seedUser(t, db, "owner@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	item := seedItem(t, db, truck.ID, "Friet", 350)

	// primary image counts towards the cap
	require.NoError(t, db.Model(item).Update("image_size", int64(maxTotalMediaBytes-4)).Error)

	_, err := svc.AddMedia(owner.ID, truck.ID, "Friet", &MediaIn{Kind: "image", DataB64: b64("12345678")})
	ie, ok := apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "media", ie.Field)

	_, err = svc.AddMedia(owner.ID, truck.ID, "Friet", &MediaIn{Kind: "gif", DataB64: b64("x")})
	ie, ok = apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "kind", ie.Field)
}
