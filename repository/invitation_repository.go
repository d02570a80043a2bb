package repository

import (
	"errors"

	"github.com/LiamF-2261667/fruckr-sub000/entity"

	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

// FindPending looks up an open invitation for (truck, user); callers use a
// miss to decide whether a new one is needed (create-if-absent idiom).
func (r *InvitationRepository) FindPending(truckID, userID uint) (*entity.WorkInvitation, error) {
	var inv entity.WorkInvitation
	err := r.DB.Where("foodtruck_id = ? AND user_id = ? AND status = ?", truckID, userID, "pending").
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) Create(inv *entity.WorkInvitation) error {
	return r.DB.Create(inv).Error
}

func (r *InvitationRepository) FindByToken(token string) (*entity.WorkInvitation, error) {
	var inv entity.WorkInvitation
	err := r.DB.Where("token = ?", token).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.WorkInvitation{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *InvitationRepository) ListForUser(userID uint) ([]entity.WorkInvitation, error) {
	var invs []entity.WorkInvitation
	err := r.DB.Preload("Foodtruck").
		Where("user_id = ? AND status = ?", userID, "pending").
		Find(&invs).Error
	return invs, err
}
