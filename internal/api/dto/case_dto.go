package dto

import (
	"time"

	"github.com/tostadas-valencia/case-service/internal/domain"
)

// CreateCaseRequest payload for case intake.
type CreateCaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	AuthorID    string `json:"authorId"`
}

// CaseResponse mirrors the stored case record on the wire.
type CaseResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Ticket      string            `json:"ticket"`
	AuthorID    string            `json:"authorId"`
	Status      domain.CaseStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// FormattedCaseResponse is the by-author-email listing shape, where createdAt
// is rendered as a locale string instead of RFC 3339.
type FormattedCaseResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Ticket      string            `json:"ticket"`
	AuthorID    string            `json:"authorId"`
	Status      domain.CaseStatus `json:"status"`
	CreatedAt   string            `json:"createdAt"`
}

// localeLayout matches the en-US short date/time rendering used by the
// by-email case listing.
const localeLayout = "1/2/2006, 3:04:05 PM"

// NewCaseResponse maps a domain case to its response shape.
func NewCaseResponse(c *domain.Case) CaseResponse {
	return CaseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
		Ticket:      c.Ticket,
		AuthorID:    c.AuthorID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

// NewCaseListResponse maps a slice of cases, yielding an empty (not nil)
// slice so the JSON body always carries an array.
func NewCaseListResponse(cases []domain.Case) []CaseResponse {
	result := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		result = append(result, NewCaseResponse(&cases[i]))
	}
	return result
}

// NewFormattedCaseListResponse maps cases with locale-formatted timestamps.
func NewFormattedCaseListResponse(cases []domain.Case) []FormattedCaseResponse {
	result := make([]FormattedCaseResponse, 0, len(cases))
	for i := range cases {
		c := &cases[i]
		result = append(result, FormattedCaseResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Type:        c.Type,
			Ticket:      c.Ticket,
			AuthorID:    c.AuthorID,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt.Format(localeLayout),
		})
	}
	return result
}
