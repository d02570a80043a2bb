package services

import (
	"errors"
	"strings"
	"time"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns the login/register business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterIn struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phoneNumber"`
}

// Register creates a new user; a duplicate email is rejected.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := formatPhoneNumber(in.Phone)

	if !emailRe.MatchString(email) {
		return nil, apperr.Invalid("email", "invalid email address")
	}
	if len(in.Password) < 8 {
		return nil, apperr.Invalid("password", "password must be at least 8 characters")
	}
	if phone != "" && !digitsRe.MatchString(strings.TrimPrefix(phone, "+")) {
		return nil, apperr.Invalid("phoneNumber", "phone number may only contain digits and separators")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Invalid("email", "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: phone,
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and mints a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

type UpdateMeIn struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phoneNumber"`
}

func (s *AuthService) UpdateMe(userID uint, in *UpdateMeIn) (*entity.User, error) {
	phone := formatPhoneNumber(in.Phone)
	if phone != "" && !digitsRe.MatchString(strings.TrimPrefix(phone, "+")) {
		return nil, apperr.Invalid("phoneNumber", "phone number may only contain digits and separators")
	}
	updates := map[string]any{
		"first_name":   strings.TrimSpace(in.FirstName),
		"last_name":    strings.TrimSpace(in.LastName),
		"phone_number": phone,
	}
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
