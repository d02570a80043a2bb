package services

import (
	"strings"
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewFoodtruckRepository(db),
		repository.NewFoodItemRepository(db),
	)
}

func TestReviewValidation(t *testing.T) {
	cases := []struct {
		name  string
		in    ReviewIn
		field string
	}{
		{"rating too low", ReviewIn{Rating: 0}, "rating"},
		{"rating too high", ReviewIn{Rating: 6}, "rating"},
		{"title without content", ReviewIn{Rating: 4, Title: "Lekker"}, "title"},
		{"content without title", ReviewIn{Rating: 4, Content: "Echt lekker"}, "title"},
		{"title with symbols", ReviewIn{Rating: 4, Title: "Lekker <b>", Content: "x"}, "title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateReviewIn(&tc.in)
			ie, ok := apperr.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, ie.Field)
		})
	}

	// a bare star rating needs no text at all
	assert.NoError(t, validateReviewIn(&ReviewIn{Rating: 3}))
}

func TestReviewLengthLimitsCountCharacters(t *testing.T) {
	// accented letters are multi-byte, the limits count characters
	title := strings.Repeat("é", 255)
	content := strings.Repeat("ü", 1000)
	assert.NoError(t, validateReviewIn(&ReviewIn{Rating: 4, Title: title, Content: content}))

	err := validateReviewIn(&ReviewIn{Rating: 4, Title: title + "é", Content: "x"})
	ie, ok := apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "title", ie.Field)

	err = validateReviewIn(&ReviewIn{Rating: 4, Title: "Ok", Content: content + "ü"})
	ie, ok = apperr.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "content", ie.Field)
}

func TestReviewCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")

	review, err := svc.Create(client.ID, truck.ID, &ReviewIn{Rating: 4, Title: "Top friet", Content: "Elke week terug"})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	reviews, avg, err := svc.ListForTruck(truck.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.InDelta(t, 4.0, avg, 0.001)
}

func TestReviewStaffCannotReviewOwnTruck(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	owner := seedUser(t, db, "owner@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")

	_, err := svc.Create(owner.ID, truck.ID, &ReviewIn{Rating: 5})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestReviewForFoodItemUpdatesItemRating(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	owner := seedUser(t, db, "owner@test.be")
	a := seedUser(t, db, "a@test.be")
	b := seedUser(t, db, "b@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")
	seedItem(t, db, truck.ID, "Friet", 350)

	_, err := svc.Create(a.ID, truck.ID, &ReviewIn{Rating: 5, FoodName: "Friet"})
	require.NoError(t, err)
	_, err = svc.Create(b.ID, truck.ID, &ReviewIn{Rating: 2, FoodName: "Friet"})
	require.NoError(t, err)

	item, err := repository.NewFoodItemRepository(db).FindByName(truck.ID, "Friet")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, item.Rating, 0.001)
}

func TestReviewForUnknownFoodItem(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	owner := seedUser(t, db, "owner@test.be")
	client := seedUser(t, db, "client@test.be")
	truck := seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")

	_, err := svc.Create(client.ID, truck.ID, &ReviewIn{Rating: 4, FoodName: "Nope"})
	assert.ErrorIs(t, err, apperr.ErrItemNotFound)
}
