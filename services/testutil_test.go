package services

import (
	"errors"
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/mailer"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. Max one
// open connection, otherwise each pooled connection gets its own :memory:
// instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.SetupJoinTable(&entity.Foodtruck{}, "Workers", &entity.FoodtruckWorker{}))
	require.NoError(t, db.SetupJoinTable(&entity.User{}, "StaffOf", &entity.FoodtruckWorker{}))

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Address{},
		&entity.Foodtruck{}, &entity.FoodtruckTag{},
		&entity.OpenTime{}, &entity.FutureLocation{},
		&entity.FoodItem{}, &entity.Ingredient{}, &entity.Media{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.WorkInvitation{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

// seedTruck creates an address, the truck and the owner's staff row.
func seedTruck(t *testing.T, db *gorm.DB, ownerID uint, name, city string) *entity.Foodtruck {
	t.Helper()
	addr := &entity.Address{PostalCode: "3500", City: city, Street: "Markt", HouseNumber: "1", Bus: "/"}
	require.NoError(t, db.Create(addr).Error)

	truck := &entity.Foodtruck{Name: name, AddressID: addr.ID, OwnerID: ownerID}
	require.NoError(t, db.Create(truck).Error)

	repo := repository.NewFoodtruckRepository(db)
	require.NoError(t, repo.AddWorker(db, truck.ID, ownerID))
	return truck
}

func seedItem(t *testing.T, db *gorm.DB, truckID uint, name string, price int64) *entity.FoodItem {
	t.Helper()
	item := &entity.FoodItem{
		FoodtruckID: truckID,
		Name:        name,
		Price:       price,
		Image:       []byte("img"),
		ImageType:   "image/png",
		ImageSize:   3,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedAddress(t *testing.T, db *gorm.DB) *entity.Address {
	t.Helper()
	a := &entity.Address{PostalCode: "3500", City: "Hasselt", Street: "Dorpsstraat", HouseNumber: "12", Bus: "/"}
	require.NoError(t, db.Create(a).Error)
	return a
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodItemRepository(db))
}

func newOrderService(db *gorm.DB, mail mailer.Mailer) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewFoodtruckRepository(db),
		repository.NewUserRepository(db),
		mail,
	)
}

// recordingMailer captures sends so tests can assert on notifications.
type recordingMailer struct {
	sent []string // "to|subject"
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

// failingMailer simulates a bounced notification.
type failingMailer struct{}

func (failingMailer) Send(to, subject, htmlBody string) error {
	return &apperr.MailSend{Err: errors.New("smtp unreachable")}
}
