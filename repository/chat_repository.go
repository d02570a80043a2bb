// repository/chat_repository.go
package repository

import (
	"errors"
	"time"

	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// GetOrCreateRoom returns the room for (foodtruck, client), creating it on
// first contact.
func (r *ChatRepository) GetOrCreateRoom(truckID, clientID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.db.Where("foodtruck_id = ? AND client_id = ?", truckID, clientID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		room = entity.ChatRoom{FoodtruckID: truckID, ClientID: clientID, LastMessageAt: time.Now()}
		if err := r.db.Create(&room).Error; err != nil {
			return nil, err
		}
		return &room, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) FindRoom(roomID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindRoomsByClient lists the user's rooms, most recent conversation first.
func (r *ChatRepository) FindRoomsByClient(clientID uint) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.db.
		Preload("Foodtruck").
		Where("client_id = ?", clientID).
		Order("last_message_at DESC").
		Find(&rooms).Error
	return rooms, err
}

// FindRoomsByTruck lists a truck's rooms for its staff, same ordering.
func (r *ChatRepository) FindRoomsByTruck(truckID uint) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.db.
		Preload("Client").
		Where("foodtruck_id = ?", truckID).
		Order("last_message_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *ChatRepository) FindMessagesByRoom(roomID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&entity.ChatRoom{}).Where("id = ?", msg.RoomID).
			Update("last_message_at", msg.CreatedAt).Error
	})
}
