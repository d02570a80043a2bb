package repository

import (
	"errors"

	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty unbound cart when
// none exists yet (no error, so the frontend can always render it).
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).Preload("Items").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem replaces any existing line for the same food name
// (last-write-wins on amount).
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND food_name = ?", cartID, row.FoodName).
		First(&exist).Error
	if err == nil {
		exist.Amount = row.Amount
		exist.UnitPrice = row.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) FindItem(cartID uint, foodName string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("cart_id = ? AND food_name = ?", cartID, foodName).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) UpdateAmount(tx *gorm.DB, cartID uint, foodName string, amount int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND food_name = ?", cartID, foodName).
		Update("amount", amount)
	return res.RowsAffected, res.Error
}

// RemoveItem deletes one line; when that empties the cart the foodtruck
// binding resets to 0 so the next add can pick any truck.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID uint, foodName string) (int64, error) {
	res := tx.Where("cart_id = ? AND food_name = ?", cartID, foodName).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}
	err := tx.Exec(`
		UPDATE carts SET foodtruck_id = 0
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, cartID).Error
	return res.RowsAffected, err
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("foodtruck_id", 0).Error
}
