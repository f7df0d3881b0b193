package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fittrack/internal/services"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.HandleCreateUser)
	router.Get("/users", h.HandleListUsers)
}

// createUserRequest accepts the username from a JSON or form-encoded body.
type createUserRequest struct {
	Username string `json:"username" form:"username"`
}

// userResponse is the wire shape for a user: the stored username plus the
// store-assigned ID under the legacy `_id` key.
type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// HandleCreateUser creates a new user from the submitted username.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, err := h.userService.CreateUser(req.Username)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(userResponse{
		Username: user.Username,
		ID:       user.ID,
	})
}

// HandleListUsers returns all users as a flat array.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, userResponse{
			Username: user.Username,
			ID:       user.ID,
		})
	}
	return c.JSON(resp)
}
