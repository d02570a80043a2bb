// services/order_transitions.go
package services

import (
	"fmt"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// IsReady and IsCollected are independent flags: confirming a pickup that
// was never marked ready is legal and stays so.

// SetReady marks the order ready for pickup and mails the client,
// best-effort: a mail failure never rolls back or fails the transition.
func (s *OrderService) SetReady(workerID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	ok, err := s.TruckRepo.IsStaff(o.FoodtruckID, workerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrUnauthorizedWorker
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.MarkReady(tx, o.ID)
	})
	if err != nil {
		return err
	}

	s.notifyClient(o.ClientID, "Your order is ready for pickup",
		fmt.Sprintf("<p>Order #%d is ready, come and get it!</p>", o.ID))
	return nil
}

// Confirm records the pickup: sets the confirmer and IsCollected, then
// mails a review request, best-effort.
func (s *OrderService) Confirm(workerID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	ok, err := s.TruckRepo.IsStaff(o.FoodtruckID, workerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrUnauthorizedWorker
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.MarkCollected(tx, o.ID, workerID)
	})
	if err != nil {
		return err
	}

	s.notifyClient(o.ClientID, "How was your order?",
		fmt.Sprintf("<p>Thanks for picking up order #%d. Leave the foodtruck a review!</p>", o.ID))
	return nil
}

func (s *OrderService) notifyClient(clientID uint, subject, body string) {
	client, err := s.UserRepo.FindByID(clientID)
	if err != nil {
		log.Warn().Err(err).Uint("clientId", clientID).Msg("order notification skipped")
		return
	}
	if err := s.Mail.Send(client.Email, subject, body); err != nil {
		log.Warn().Err(err).Uint("clientId", clientID).Msg("order notification failed")
	}
}
