package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"fittrack/internal/models"
)

// MockExerciseRepository is an in-memory implementation of ExerciseRepository.
type MockExerciseRepository struct {
	exercises []models.Exercise
	mu        sync.RWMutex
}

// NewMockExerciseRepository creates a new instance of MockExerciseRepository.
func NewMockExerciseRepository() *MockExerciseRepository {
	return &MockExerciseRepository{}
}

// Create adds a new exercise.
func (r *MockExerciseRepository) Create(exercise *models.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = uuid.New().String()
	}
	r.exercises = append(r.exercises, *exercise)
	return nil
}

// FindByUsername filters, sorts by date ascending, and truncates in memory,
// mirroring the query the GORM implementation issues.
func (r *MockExerciseRepository) FindByUsername(username string, filter ExerciseFilter) ([]models.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Exercise, 0)
	for _, e := range r.exercises {
		if e.Username != username {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}
