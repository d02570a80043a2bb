package repository

import (
	"time"

	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// FindByNaturalKey re-fetches an order by (foodtruck, client, timestamp).
// The timestamp has second precision; two same-second orders from one
// client to one truck collide on this key, so the newest row wins.
func (r *OrderRepository) FindByNaturalKey(tx *gorm.DB, truckID, clientID uint, createdAt time.Time) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("foodtruck_id = ? AND client_id = ? AND created_at = ?", truckID, clientID, createdAt).
		Order("id DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(tx *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := tx.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND client_id = ?", orderID, userID).
		Preload("Items").
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary feeds the client's order history list.
type OrderSummary struct {
	ID          uint      `json:"id"`
	FoodtruckID uint      `json:"foodtruckId"`
	IsReady     bool      `json:"isReady"`
	IsCollected bool      `json:"isCollected"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, foodtruck_id, is_ready, is_collected, created_at").
		Where("client_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForTruck(truckID uint, openOnly bool) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Where("foodtruck_id = ?", truckID).Preload("Items")
	if openOnly {
		q = q.Where("is_collected = ?", false)
	}
	err := q.Order("id ASC").Find(&orders).Error
	return orders, err
}

// ---------------- lifecycle flags ----------------

func (r *OrderRepository) MarkReady(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("is_ready", true).Error
}

func (r *OrderRepository) MarkCollected(tx *gorm.DB, orderID, confirmerID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"is_collected": true,
			"confirmer_id": confirmerID,
		}).Error
}
