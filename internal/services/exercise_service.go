package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// Date strings are accepted as yyyy-mm-dd or RFC 3339.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// EventPublisher publishes exercise lifecycle events to a message broker.
// A nil publisher disables publication.
type EventPublisher interface {
	PublishExerciseCreated(event map[string]interface{}) error
}

// ExerciseService handles business logic related to exercise logging.
type ExerciseService struct {
	exerciseRepo repositories.ExerciseRepository
	userRepo     repositories.UserRepository
	publisher    EventPublisher
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(exerciseRepo repositories.ExerciseRepository, userRepo repositories.UserRepository, publisher EventPublisher) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		userRepo:     userRepo,
		publisher:    publisher,
	}
}

// AddExercise resolves the owning user, coerces duration and date, and
// persists a new exercise carrying a copy of the user's username. It returns
// the stored exercise together with the owning user, whose ID the response
// contract echoes back. Duration must be numeric; a supplied date must parse.
func (s *ExerciseService) AddExercise(userID, description, duration, date string) (*models.User, *models.Exercise, error) {
	user, err := s.resolveUser(userID)
	if err != nil {
		return nil, nil, err
	}

	minutes, err := strconv.Atoi(duration)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid duration %q: expected a whole number of minutes", duration)
	}

	when := time.Now()
	if date != "" {
		when, err = parseDate(date)
		if err != nil {
			return nil, nil, err
		}
	}

	exercise := &models.Exercise{
		Username:    user.Username,
		Description: description,
		Duration:    minutes,
		Date:        when,
	}
	if err := s.exerciseRepo.Create(exercise); err != nil {
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.publishCreated(user, exercise)

	return user, exercise, nil
}

// GetLog resolves the user and returns their exercises, filtered to the
// optional from/to date window and truncated to limit entries. Entries come
// back ordered by date ascending.
func (s *ExerciseService) GetLog(userID, from, to, limit string) (*models.User, []models.Exercise, error) {
	user, err := s.resolveUser(userID)
	if err != nil {
		return nil, nil, err
	}

	var filter repositories.ExerciseFilter
	if from != "" {
		t, err := parseDate(from)
		if err != nil {
			return nil, nil, err
		}
		filter.From = &t
	}
	if to != "" {
		t, err := parseDate(to)
		if err != nil {
			return nil, nil, err
		}
		filter.To = &t
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid limit %q: expected a whole number", limit)
		}
		filter.Limit = n
	}

	exercises, err := s.exerciseRepo.FindByUsername(user.Username, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query exercise log: %w", err)
	}
	return user, exercises, nil
}

func (s *ExerciseService) resolveUser(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// publishCreated emits an exercise.created event. Publication is best effort:
// a broker failure is logged and never fails the request.
func (s *ExerciseService) publishCreated(user *models.User, exercise *models.Exercise) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"exerciseID":  exercise.ID,
		"userID":      user.ID,
		"username":    exercise.Username,
		"description": exercise.Description,
		"duration":    exercise.Duration,
		"date":        exercise.Date.Format(time.RFC3339),
	}
	if err := s.publisher.PublishExerciseCreated(event); err != nil {
		log.Printf("Warning: Failed to publish exercise created event for user %s: %v", user.ID, err)
	}
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", value)
}
