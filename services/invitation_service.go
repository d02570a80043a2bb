// services/invitation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/mailer"
	"github.com/LiamF-2261667/fruckr-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationService struct {
	DB        *gorm.DB
	Repo      *repository.InvitationRepository
	TruckRepo *repository.FoodtruckRepository
	UserRepo  *repository.UserRepository
	Mail      mailer.Mailer
	BaseURL   string
}

func NewInvitationService(
	db *gorm.DB,
	repo *repository.InvitationRepository,
	truckRepo *repository.FoodtruckRepository,
	userRepo *repository.UserRepository,
	mail mailer.Mailer,
	baseURL string,
) *InvitationService {
	return &InvitationService{DB: db, Repo: repo, TruckRepo: truckRepo, UserRepo: userRepo, Mail: mail, BaseURL: baseURL}
}

// Invite offers staff membership to the user behind email. An open
// invitation for the same pair is reused instead of duplicated
// (optimistic check-then-insert, as everywhere else). The invitation row
// persists even when the mail fails; the mail error is returned alongside
// so the caller can report partial success.
func (s *InvitationService) Invite(ownerID, truckID uint, email string) (*entity.WorkInvitation, error) {
	ok, err := s.TruckRepo.IsOwnedBy(truckID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	staff, err := s.TruckRepo.IsStaff(truckID, user.ID)
	if err != nil {
		return nil, err
	}
	if staff {
		return nil, apperr.Invalid("email", "that user already works at this foodtruck")
	}

	inv, err := s.Repo.FindPending(truckID, user.ID)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inv = &entity.WorkInvitation{
		FoodtruckID: truckID,
		UserID:      user.ID,
		Email:       email,
		Token:       uuid.NewString(),
		Status:      "pending",
	}
	if err := s.Repo.Create(inv); err != nil {
		return nil, err
	}

	truck, err := s.TruckRepo.FindByID(truckID)
	truckName := "a foodtruck"
	if err == nil {
		truckName = truck.Name
	}
	body := fmt.Sprintf(
		`<p>You have been invited to work at %s.</p>
<p><a href="%s/invitations/accept?token=%s">Accept</a> or <a href="%s/invitations/decline?token=%s">decline</a>.</p>`,
		truckName, s.BaseURL, inv.Token, s.BaseURL, inv.Token,
	)
	if mailErr := s.Mail.Send(email, "Work invitation", body); mailErr != nil {
		return inv, mailErr
	}
	return inv, nil
}

// Accept turns the invitation into a staff row; both writes share one
// transaction.
func (s *InvitationService) Accept(token string) (*entity.WorkInvitation, error) {
	inv, err := s.Repo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if inv.Status != "pending" {
		return nil, apperr.Invalid("token", "invitation was already handled")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.TruckRepo.AddWorker(tx, inv.FoodtruckID, inv.UserID); err != nil {
			return err
		}
		return s.Repo.UpdateStatus(tx, inv.ID, "accepted")
	})
	if err != nil {
		return nil, err
	}
	inv.Status = "accepted"
	return inv, nil
}

func (s *InvitationService) Decline(token string) (*entity.WorkInvitation, error) {
	inv, err := s.Repo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if inv.Status != "pending" {
		return nil, apperr.Invalid("token", "invitation was already handled")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, inv.ID, "declined")
	})
	if err != nil {
		return nil, err
	}
	inv.Status = "declined"
	return inv, nil
}

func (s *InvitationService) ListForUser(userID uint) ([]entity.WorkInvitation, error) {
	return s.Repo.ListForUser(userID)
}
