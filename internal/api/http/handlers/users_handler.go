package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tostadas-valencia/case-service/internal/api/dto"
	"github.com/tostadas-valencia/case-service/internal/service"
)

// UsersHandler exposes user endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"users": dto.NewUserListResponse(users),
	})
}

// GetByEmail handles GET /users/:email.
func (h *UsersHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	user, err := h.users.GetByEmail(c.Context(), email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}

// GetByID handles GET /user/id/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}

// Create handles POST /users. Repeated submissions with the same email return
// the already stored user unchanged.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.FindOrCreate(c.Context(), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}
