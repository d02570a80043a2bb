package services

import (
	"time"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/mailer"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	TruckRepo *repository.FoodtruckRepository
	UserRepo  *repository.UserRepository
	Mail      mailer.Mailer
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	truckRepo *repository.FoodtruckRepository,
	userRepo *repository.UserRepository,
	mail mailer.Mailer,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, TruckRepo: truckRepo, UserRepo: userRepo, Mail: mail}
}

type CreateOrderRes struct {
	ID          uint   `json:"id"`
	TotalPrice  string `json:"totalPrice"`
	ItemCount   int    `json:"itemCount"`
	IsReady     bool   `json:"isReady"`
	IsCollected bool   `json:"isCollected"`
}

// Create persists an order from the given cart items. Preconditions run in
// a fixed sequence and each failure is fatal before anything is written:
//  1. foodtruck and client ids are set
//  2. the delivery address has been persisted
//  3. there is at least one item
//  4. every amount is positive
func (s *OrderService) Create(truckID, clientID uint, address *entity.Address, items []entity.CartItem) (*CreateOrderRes, error) {
	if truckID == 0 || clientID == 0 {
		return nil, apperr.BadOrder("foodtruck and client are required")
	}
	if address == nil || address.ID == 0 {
		return nil, apperr.BadOrder("delivery address has not been saved")
	}
	if len(items) == 0 {
		return nil, apperr.BadOrder("an order needs at least one item")
	}
	for _, it := range items {
		if it.Amount <= 0 {
			return nil, apperr.BadOrder("item amounts must be positive")
		}
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Second precision on purpose: the row is re-fetched below by
		// (foodtruck, client, timestamp), the source system's natural key.
		createdAt := time.Now().Truncate(time.Second)
		order := entity.Order{
			FoodtruckID: truckID,
			ClientID:    clientID,
			AddressID:   address.ID,
			ConfirmerID: nil,
			IsReady:     false,
			IsCollected: false,
		}
		order.CreatedAt = createdAt
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		fetched, err := s.Repo.FindByNaturalKey(tx, truckID, clientID, createdAt)
		if err != nil {
			return err
		}

		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:     fetched.ID,
				FoodtruckID: truckID,
				FoodName:    it.FoodName,
				Amount:      it.Amount,
				UnitPrice:   it.UnitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		lines, err := s.Repo.GetOrderItems(tx, fetched.ID)
		if err != nil {
			return err
		}
		count := 0
		for _, l := range lines {
			count += l.Amount
		}

		out = CreateOrderRes{
			ID:          fetched.ID,
			TotalPrice:  TotalPrice(items),
			ItemCount:   count,
			IsReady:     fetched.IsReady,
			IsCollected: fetched.IsCollected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFromCart places the order for the user's current cart and clears
// the cart afterwards.
func (s *OrderService) CreateFromCart(userID uint, address *entity.Address) (*CreateOrderRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	res, err := s.Create(cart.FoodtruckID, userID, address, cart.Items)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ----- listings -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

// ListForTruck is staff-only.
func (s *OrderService) ListForTruck(workerID, truckID uint, openOnly bool) ([]entity.Order, error) {
	ok, err := s.TruckRepo.IsStaff(truckID, workerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrUnauthorizedWorker
	}
	return s.Repo.ListOrdersForTruck(truckID, openOnly)
}
