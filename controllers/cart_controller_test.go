package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
	"github.com/LiamF-2261667/fruckr-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Foodtruck{}, &entity.FoodItem{}, &entity.Ingredient{},
		&entity.Cart{}, &entity.CartItem{},
	))
	return db
}

// fakeAuth stands in for the JWT middleware.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("role", "customer")
	}
}

func setupCartRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewCartService(db, repository.NewCartRepository(db), repository.NewFoodItemRepository(db))
	ctrl := NewCartController(svc)

	r := gin.New()
	cart := r.Group("/cart", fakeAuth(userID))
	{
		cart.GET("", ctrl.Get)
		cart.POST("/add", ctrl.Add)
		cart.POST("/remove", ctrl.Remove)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestCartEndpoints(t *testing.T) {
	db := setupCartTestDB(t)

	truck := entity.Foodtruck{Name: "Frietkot", OwnerID: 1}
	require.NoError(t, db.Create(&truck).Error)
	require.NoError(t, db.Create(&entity.FoodItem{FoodtruckID: truck.ID, Name: "Friet", Price: 350}).Error)

	r := setupCartRouter(t, db, 7)

	w, body := doJSON(t, r, http.MethodPost, "/cart/add", gin.H{
		"foodtruckId": truck.ID, "foodName": "Friet", "amount": 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, body["success"].(bool))

	w, body = doJSON(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7.00", body["totalPrice"])
	assert.Equal(t, float64(2), body["itemCount"])
}

func TestCartAddInvalidAmountEnvelope(t *testing.T) {
	db := setupCartTestDB(t)
	r := setupCartRouter(t, db, 7)

	w, body := doJSON(t, r, http.MethodPost, "/cart/add", gin.H{
		"foodtruckId": 1, "foodName": "Friet", "amount": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body["success"].(bool))
	assert.Equal(t, "amount", body["field"])
}

func TestCartCrossTruckConflictEnvelope(t *testing.T) {
	db := setupCartTestDB(t)

	truckA := entity.Foodtruck{Name: "Frietkot", OwnerID: 1}
	truckB := entity.Foodtruck{Name: "Pizzamobiel", OwnerID: 1}
	require.NoError(t, db.Create(&truckA).Error)
	require.NoError(t, db.Create(&truckB).Error)
	require.NoError(t, db.Create(&entity.FoodItem{FoodtruckID: truckA.ID, Name: "Friet", Price: 350}).Error)
	require.NoError(t, db.Create(&entity.FoodItem{FoodtruckID: truckB.ID, Name: "Margherita", Price: 900}).Error)

	r := setupCartRouter(t, db, 7)

	w, _ := doJSON(t, r, http.MethodPost, "/cart/add", gin.H{"foodtruckId": truckA.ID, "foodName": "Friet", "amount": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/cart/add", gin.H{"foodtruckId": truckB.ID, "foodName": "Margherita", "amount": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, body["success"].(bool))
}

func TestCartRemoveMissingItemEnvelope(t *testing.T) {
	db := setupCartTestDB(t)
	r := setupCartRouter(t, db, 7)

	w, body := doJSON(t, r, http.MethodPost, "/cart/remove", gin.H{"foodName": "Friet"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body["success"].(bool))
}
