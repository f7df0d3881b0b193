package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		user.ID = "user-1"
	}).Return(nil).Once()

	user, err := service.CreateUser("fcc_test")

	assert.NoError(t, err)
	assert.Equal(t, "fcc_test", user.Username)
	assert.Equal(t, "user-1", user.ID)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_StoreRejection(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("write rejected")).Once()

	user, err := service.CreateUser("fcc_test")

	assert.Error(t, err)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	expected := []models.User{
		{ID: "user-1", Username: "alice"},
		{ID: "user-2", Username: "alice"}, // duplicate usernames are allowed
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	users, err := service.ListUsers()

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("user with ID missing: %w", repositories.ErrNotFound)).Once()

	user, err := service.GetUserByID("missing")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
