package user_service

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
	"student-control/internal/validation"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type userService struct {
	userRepo repository.UserRepository
	cost     int
}

func NewUserService(userRepo repository.UserRepository) service.UserService {
	return &userService{
		userRepo: userRepo,
		cost:     bcrypt.DefaultCost,
	}
}

func (s *userService) Register(username, password string) (bool, error) {
	creds := models.Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := validation.Struct(creds); err != nil {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		return false, errors.Wrap(err, "hash password")
	}

	err = s.userRepo.Create(&models.User{Username: creds.Username, PasswordHash: string(hash)})
	if models.IsConstraintViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *userService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) HasUsers() (bool, error) {
	return s.userRepo.Exists()
}

func (s *userService) ResetPassword(username, password string) error {
	creds := models.Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := validation.Struct(creds); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	return s.userRepo.UpdatePassword(creds.Username, string(hash))
}
