package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tostadas-valencia/case-service/internal/api/dto"
	"github.com/tostadas-valencia/case-service/internal/service"
)

// CasesHandler exposes case endpoints.
type CasesHandler struct {
	cases  *service.CaseService
	intake *service.IntakeService
}

// NewCasesHandler constructs handler.
func NewCasesHandler(cases *service.CaseService, intake *service.IntakeService) *CasesHandler {
	return &CasesHandler{cases: cases, intake: intake}
}

// List handles GET /cases.
func (h *CasesHandler) List(c *fiber.Ctx) error {
	cases, err := h.cases.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"cases": dto.NewCaseListResponse(cases),
	})
}

// GetByID handles GET /cases/:id.
func (h *CasesHandler) GetByID(c *fiber.Ctx) error {
	case_, err := h.cases.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"case_": dto.NewCaseResponse(case_),
	})
}

// ListByAuthorID handles GET /cases/user/:id. Zero matches answer 404.
func (h *CasesHandler) ListByAuthorID(c *fiber.Ctx) error {
	cases, err := h.cases.ListByAuthorID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"cases": dto.NewCaseListResponse(cases),
	})
}

// ListByAuthorEmail handles GET /cases/user/email/:email. Timestamps in this
// listing are rendered as locale strings.
func (h *CasesHandler) ListByAuthorEmail(c *fiber.Ctx) error {
	cases, err := h.cases.ListByAuthorEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"cases": dto.NewFormattedCaseListResponse(cases),
	})
}

// GetByTicket handles GET /cases/ticket/:ticket.
func (h *CasesHandler) GetByTicket(c *fiber.Ctx) error {
	case_, err := h.cases.GetByTicket(c.Context(), c.Params("ticket"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"case_": dto.NewCaseResponse(case_),
	})
}

// Create handles POST /cases: case intake plus advisor auto-assignment.
func (h *CasesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	case_, assignee, err := h.intake.CreateCase(c.Context(), service.CaseCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"case_":    dto.NewCaseResponse(case_),
		"assignee": dto.NewAssigneeResponse(assignee),
	})
}
