package services

import (
	"errors"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodItemRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodItemRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

type AddToCartIn struct {
	FoodtruckID uint   `json:"foodtruckId" binding:"required"`
	FoodName    string `json:"foodName" binding:"required"`
	Amount      int    `json:"amount"`
}

type CartOut struct {
	Cart       *entity.Cart `json:"cart"`
	TotalPrice string       `json:"totalPrice"`
	ItemCount  int          `json:"itemCount"`
}

func (s *CartService) Get(userID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	return &CartOut{
		Cart:       c,
		TotalPrice: TotalPrice(c.Items),
		ItemCount:  TotalItemCount(c.Items),
	}, nil
}

// TotalPrice sums price*amount over the items, formatted to 2 decimals.
func TotalPrice(items []entity.CartItem) string {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromInt(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Amount)))
		total = total.Add(line)
	}
	return total.Div(decimal.NewFromInt(100)).StringFixed(2)
}

func TotalItemCount(items []entity.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Amount
	}
	return n
}

// Add binds an empty cart to the item's foodtruck; a cart already bound to
// another truck rejects the add untouched.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Amount <= 0 {
		return apperr.Invalid("amount", "amount must be a positive integer")
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	if c.FoodtruckID != 0 && c.FoodtruckID != in.FoodtruckID {
		return apperr.ErrCrossFoodtruckCart
	}

	item, err := s.FoodRepo.FindByName(in.FoodtruckID, in.FoodName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrItemNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if c.FoodtruckID == 0 {
			if err := tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
				Update("foodtruck_id", in.FoodtruckID).Error; err != nil {
				return err
			}
		}
		line := &entity.CartItem{
			FoodtruckID: in.FoodtruckID,
			FoodName:    item.Name,
			Amount:      in.Amount,
			UnitPrice:   item.Price,
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// UpdateAmount has no lower bound here; amounts are validated again at
// order time.
func (s *CartService) UpdateAmount(userID uint, foodName string, amount int) error {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return apperr.ErrItemNotInCart
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.UpdateAmount(tx, c.ID, foodName, amount)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrItemNotInCart
		}
		return nil
	})
}

func (s *CartService) Remove(userID uint, foodName string) error {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return apperr.ErrItemNotInCart
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveItem(tx, c.ID, foodName)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrItemNotInCart
		}
		return nil
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
