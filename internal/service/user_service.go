package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// UserService handles user-related business logic. The dashboard has no
// session model: the current user is always the first seeded user.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Current resolves the demo user the dashboard operates as.
func (s *UserService) Current() (model.User, error) {
	return s.userRepo.First()
}

// CreateUser holds the fields accepted when creating a user.
type CreateUser struct {
	Username string
	Password string
	Name     string
}

// Create stores a new user with a fresh id, enforcing username uniqueness.
func (s *UserService) Create(in CreateUser) (model.User, error) {
	_, err := s.userRepo.GetByUsername(in.Username)
	if err == nil {
		return model.User{}, apperrors.ErrDuplicateUsername
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return model.User{}, err
	}

	user := model.User{
		ID:       uuid.New().String(),
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
	}
	if err := s.userRepo.Insert(user); err != nil {
		return model.User{}, err
	}

	return user, nil
}
