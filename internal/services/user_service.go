package services

import (
	"errors"
	"fmt"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// ErrUserNotFound is returned when a user ID does not resolve to a stored
// user. Handlers map it to a 404.
var ErrUserNotFound = errors.New("user not found")

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser persists a new user with the given username and returns it with
// its assigned ID. Usernames are stored as-is: no uniqueness or non-empty
// check is applied.
func (s *UserService) CreateUser(username string) (*models.User, error) {
	user := &models.User{Username: username}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return user, nil
}

// ListUsers retrieves all users. An empty store yields an empty slice, not
// an error.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID resolves an ID to a stored user, translating a repository miss
// into ErrUserNotFound.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
