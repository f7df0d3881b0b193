package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/models"
)

// GORMExerciseRepository is a GORM implementation of ExerciseRepository.
type GORMExerciseRepository struct {
	db *gorm.DB
}

// NewGORMExerciseRepository creates a new instance of GORMExerciseRepository.
func NewGORMExerciseRepository(db *gorm.DB) *GORMExerciseRepository {
	return &GORMExerciseRepository{
		db: db,
	}
}

// Create persists a new exercise, minting an ID when none is set.
func (r *GORMExerciseRepository) Create(exercise *models.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = uuid.New().String()
	}
	if err := r.db.Create(exercise).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// FindByUsername retrieves exercises for a username, applying the optional
// date window and limit. Ordering is by date ascending so truncation keeps
// the oldest entries in the window.
func (r *GORMExerciseRepository) FindByUsername(username string, filter ExerciseFilter) ([]models.Exercise, error) {
	query := r.db.Where("username = ?", username)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	query = query.Order("date asc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var exercises []models.Exercise
	if err := query.Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to find exercises for username %s: %w", username, err)
	}
	return exercises, nil
}
