package services

import (
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesNameTagAndCity(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repository.NewFoodtruckRepository(db))
	owner := seedUser(t, db, "owner@test.be")

	pizza := seedTruck(t, db, owner.ID, "Pizza Mobiel", "Genk")
	seedTruck(t, db, owner.ID, "Frietkot", "Hasselt")

	byName, err := svc.Search("Pizza")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, pizza.ID, byName[0].ID)

	byCity, err := svc.Search("Hasselt")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Frietkot", byCity[0].Name)
}

func TestSearchKeepsDuplicateMatches(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repository.NewFoodtruckRepository(db))
	owner := seedUser(t, db, "owner@test.be")

	// matches on name AND tag, so it shows up twice
	truck := seedTruck(t, db, owner.ID, "Pizza Mobiel", "Genk")
	require.NoError(t, db.Create(&entity.FoodtruckTag{FoodtruckID: truck.ID, Name: "Pizza"}).Error)

	results, err := svc.Search("Pizza")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, truck.ID, results[0].ID)
	assert.Equal(t, truck.ID, results[1].ID)
}

func TestSearchNoResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repository.NewFoodtruckRepository(db))

	_, err := svc.Search("niets")
	assert.ErrorIs(t, err, apperr.ErrNoResults)
}

func TestSearchRejectsInvalidQuery(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repository.NewFoodtruckRepository(db))

	for _, q := range []string{"", "  ", "pizza;", "a%b", "drop'table"} {
		_, err := svc.Search(q)
		ie, ok := apperr.AsInvalidInput(err)
		require.True(t, ok, "query %q", q)
		assert.Equal(t, "query", ie.Field)
	}
}
