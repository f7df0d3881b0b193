package repositories

import (
	"time"

	"fittrack/internal/models"
)

// ExerciseFilter narrows a log query. Nil bounds mean unbounded; a Limit of
// zero means no truncation.
type ExerciseFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ExerciseRepository defines the interface for exercise data access.
type ExerciseRepository interface {
	Create(exercise *models.Exercise) error
	// FindByUsername returns the exercises logged under the given username,
	// date-filtered and truncated per the filter, ordered by date ascending.
	FindByUsername(username string, filter ExerciseFilter) ([]models.Exercise, error)
}
