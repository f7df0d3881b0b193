package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/internal/services"
)

// Response dates render like "Mon Jan 02 2006".
const dateLayout = "Mon Jan 02 2006"

// ExerciseHandler handles HTTP requests for exercise logging.
type ExerciseHandler struct {
	exerciseService *services.ExerciseService
	validate        *validator.Validate
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the exercise routes with the Fiber app.
func (h *ExerciseHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users/:id/exercises", h.HandleAddExercise)
	router.Get("/users/:id/logs", h.HandleGetLog)
}

// addExerciseRequest accepts the exercise fields from a JSON or form-encoded
// body. Duration arrives as text and must be numeric; date is optional.
type addExerciseRequest struct {
	Description string `json:"description" form:"description"`
	Duration    string `json:"duration" form:"duration" validate:"required,numeric"`
	Date        string `json:"date" form:"date"`
}

// exerciseResponse echoes the stored exercise. The `_id` field carries the
// OWNING USER's id, not an exercise id, per the established contract.
type exerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []logEntry `json:"log"`
}

// HandleAddExercise logs a new exercise against the user in the path.
func (h *ExerciseHandler) HandleAddExercise(c *fiber.Ctx) error {
	var req addExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			e := validationErrors[0]
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, exercise, err := h.exerciseService.AddExercise(c.Params("id"), req.Description, req.Duration, req.Date)
	if err != nil {
		return writeExerciseError(c, err)
	}

	return c.JSON(exerciseResponse{
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(dateLayout),
		ID:          user.ID,
	})
}

// HandleGetLog returns the user's exercise log, optionally windowed by the
// from/to query dates and truncated to limit entries.
func (h *ExerciseHandler) HandleGetLog(c *fiber.Ctx) error {
	user, exercises, err := h.exerciseService.GetLog(
		c.Params("id"),
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		return writeExerciseError(c, err)
	}

	log := make([]logEntry, 0, len(exercises))
	for _, exercise := range exercises {
		log = append(log, logEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(dateLayout),
		})
	}

	return c.JSON(logResponse{
		Username: user.Username,
		Count:    len(log),
		ID:       user.ID,
		Log:      log,
	})
}

// writeExerciseError maps a missing user to 404; everything else on these
// routes is a 400.
func writeExerciseError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, services.ErrUserNotFound) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
