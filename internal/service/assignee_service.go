package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tostadas-valencia/case-service/internal/domain"
	"github.com/tostadas-valencia/case-service/internal/repository"
	apperrors "github.com/tostadas-valencia/case-service/pkg/util"
)

// AssigneeService exposes assignee reads. All lookups treat row absence as a
// nil result, never as an error: the HTTP surface answers 200 with a null
// payload for missing assignees.
type AssigneeService struct {
	assignees repository.AssigneeRepository
}

// NewAssigneeService constructs the service.
func NewAssigneeService(assignees repository.AssigneeRepository) *AssigneeService {
	return &AssigneeService{assignees: assignees}
}

// GetByID returns the assignee with the given numeric identifier, or nil.
func (s *AssigneeService) GetByID(ctx context.Context, id int) (*domain.Assignee, error) {
	return s.nilOnNoRows(s.assignees.GetByID(ctx, id))
}

// FirstByUser returns the first assignee referencing the user, or nil.
func (s *AssigneeService) FirstByUser(ctx context.Context, userID string) (*domain.Assignee, error) {
	return s.nilOnNoRows(s.assignees.FirstByUser(ctx, userID))
}

// FirstByCase returns the first assignee referencing the case, or nil.
func (s *AssigneeService) FirstByCase(ctx context.Context, caseID string) (*domain.Assignee, error) {
	return s.nilOnNoRows(s.assignees.FirstByCase(ctx, caseID))
}

// FirstByCaseTicket resolves the assignee through the case's ticket, or nil.
func (s *AssigneeService) FirstByCaseTicket(ctx context.Context, ticket string) (*domain.Assignee, error) {
	return s.nilOnNoRows(s.assignees.FirstByCaseTicket(ctx, ticket))
}

// FirstByUserAndCase returns the assignee linking the pair, or nil.
func (s *AssigneeService) FirstByUserAndCase(ctx context.Context, userID, caseID string) (*domain.Assignee, error) {
	return s.nilOnNoRows(s.assignees.FirstByUserAndCase(ctx, userID, caseID))
}

func (s *AssigneeService) nilOnNoRows(assignee *domain.Assignee, err error) (*domain.Assignee, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError(err)
	}
	return assignee, nil
}
