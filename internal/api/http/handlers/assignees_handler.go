package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tostadas-valencia/case-service/internal/api/dto"
	"github.com/tostadas-valencia/case-service/internal/domain"
	"github.com/tostadas-valencia/case-service/internal/service"
)

// AssigneesHandler exposes assignee lookups. Every route answers 200; a
// missing assignee renders as a null payload, never as 404.
type AssigneesHandler struct {
	assignees *service.AssigneeService
}

// NewAssigneesHandler constructs handler.
func NewAssigneesHandler(assignees *service.AssigneeService) *AssigneesHandler {
	return &AssigneesHandler{assignees: assignees}
}

// GetByID handles GET /assignee/:id. The identifier is integer-coerced; an
// unparsable value resolves to no match.
func (h *AssigneesHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondAssignee(c, nil)
	}

	assignee, err := h.assignees.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return respondAssignee(c, assignee)
}

// GetByUser handles GET /assignee/user/:id.
func (h *AssigneesHandler) GetByUser(c *fiber.Ctx) error {
	assignee, err := h.assignees.FirstByUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondAssignee(c, assignee)
}

// GetByCase handles GET /assignee/case/:id.
func (h *AssigneesHandler) GetByCase(c *fiber.Ctx) error {
	assignee, err := h.assignees.FirstByCase(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondAssignee(c, assignee)
}

// GetByCaseTicket handles GET /assignee/case/ticket/:ticket.
func (h *AssigneesHandler) GetByCaseTicket(c *fiber.Ctx) error {
	assignee, err := h.assignees.FirstByCaseTicket(c.Context(), c.Params("ticket"))
	if err != nil {
		return err
	}
	return respondAssignee(c, assignee)
}

// GetByUserAndCase handles GET /assignee/user/:userId/case/:caseId.
func (h *AssigneesHandler) GetByUserAndCase(c *fiber.Ctx) error {
	assignee, err := h.assignees.FirstByUserAndCase(c.Context(), c.Params("userId"), c.Params("caseId"))
	if err != nil {
		return err
	}
	return respondAssignee(c, assignee)
}

func respondAssignee(c *fiber.Ctx, assignee *domain.Assignee) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"assignee": dto.NewAssigneeResponse(assignee),
	})
}
