// services/chat_service.go
package services

import (
	"strings"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
)

type ChatService struct {
	repo      *repository.ChatRepository
	truckRepo *repository.FoodtruckRepository
}

func NewChatService(repo *repository.ChatRepository, truckRepo *repository.FoodtruckRepository) *ChatService {
	return &ChatService{repo: repo, truckRepo: truckRepo}
}

// OpenRoom gets or starts the conversation between a client and a truck.
func (s *ChatService) OpenRoom(clientID, truckID uint) (*entity.ChatRoom, error) {
	if _, err := s.truckRepo.FindByID(truckID); err != nil {
		return nil, apperr.ErrNotFound
	}
	return s.repo.GetOrCreateRoom(truckID, clientID)
}

// RoomsForUser lists the user's own conversations, latest message first.
func (s *ChatService) RoomsForUser(userID uint) ([]entity.ChatRoom, error) {
	return s.repo.FindRoomsByClient(userID)
}

func (s *ChatService) RoomsForTruck(workerID, truckID uint) ([]entity.ChatRoom, error) {
	ok, err := s.truckRepo.IsStaff(truckID, workerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrUnauthorizedWorker
	}
	return s.repo.FindRoomsByTruck(truckID)
}

func (s *ChatService) GetRoom(roomID uint) (*entity.ChatRoom, error) {
	return s.repo.FindRoom(roomID)
}

// CanAccess reports whether the user may read or write in the room.
func (s *ChatService) CanAccess(userID, roomID uint) (bool, error) {
	room, err := s.repo.FindRoom(roomID)
	if err != nil {
		return false, err
	}
	return s.canAccess(room, userID)
}

// canAccess allows the room's client and the truck's staff.
func (s *ChatService) canAccess(room *entity.ChatRoom, userID uint) (bool, error) {
	if room.ClientID == userID {
		return true, nil
	}
	return s.truckRepo.IsStaff(room.FoodtruckID, userID)
}

func (s *ChatService) Messages(userID, roomID uint) ([]entity.Message, error) {
	room, err := s.repo.FindRoom(roomID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	ok, err := s.canAccess(room, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}
	return s.repo.FindMessagesByRoom(roomID)
}

func (s *ChatService) Send(userID, roomID uint, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.Invalid("body", "message may not be empty")
	}

	room, err := s.repo.FindRoom(roomID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	ok, err := s.canAccess(room, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}

	msg := &entity.Message{
		Body:     body,
		SenderID: userID,
		RoomID:   roomID,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}
