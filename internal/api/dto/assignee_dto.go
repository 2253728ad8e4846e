package dto

import "github.com/tostadas-valencia/case-service/internal/domain"

// AssigneeResponse mirrors the stored assignee record on the wire.
type AssigneeResponse struct {
	ID     int    `json:"id"`
	CaseID string `json:"caseId"`
	UserID string `json:"userId"`
}

// NewAssigneeResponse maps a domain assignee to its response shape. A nil
// assignee stays nil so the JSON payload renders as null.
func NewAssigneeResponse(assignee *domain.Assignee) *AssigneeResponse {
	if assignee == nil {
		return nil
	}
	return &AssigneeResponse{
		ID:     assignee.ID,
		CaseID: assignee.CaseID,
		UserID: assignee.UserID,
	}
}
