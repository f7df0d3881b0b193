package repositories

import (
	"errors"

	"fittrack/internal/models"
)

// ErrNotFound is returned when a lookup does not match a stored record.
// Implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
}
