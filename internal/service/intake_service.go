package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tostadas-valencia/case-service/internal/domain"
	"github.com/tostadas-valencia/case-service/internal/events"
	"github.com/tostadas-valencia/case-service/internal/repository"
	apperrors "github.com/tostadas-valencia/case-service/pkg/util"
)

// IntakeService orchestrates case creation and advisor auto-assignment.
type IntakeService struct {
	cases      repository.CaseRepository
	users      repository.UserRepository
	assignees  repository.AssigneeRepository
	dispatcher events.Dispatcher
}

// IntakeDependencies bundles repositories for the intake service.
type IntakeDependencies struct {
	CaseRepo     repository.CaseRepository
	UserRepo     repository.UserRepository
	AssigneeRepo repository.AssigneeRepository
	Dispatcher   events.Dispatcher
}

// CaseCreateInput describes the case creation payload. All fields are opaque
// strings; AuthorID is not validated against existence.
type CaseCreateInput struct {
	Title       string
	Description string
	Type        string
	AuthorID    string
}

// NewIntakeService constructs the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	return &IntakeService{
		cases:      deps.CaseRepo,
		users:      deps.UserRepo,
		assignees:  deps.AssigneeRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateCase persists a new case, locates an advisor and links it via an
// assignee record. The three calls are sequential and not transactional: a
// failure after the case insert leaves the case behind without an assignee.
// A missing advisor is a fault of this request, not a NotFound.
func (s *IntakeService) CreateCase(ctx context.Context, input CaseCreateInput) (*domain.Case, *domain.Assignee, error) {
	case_ := &domain.Case{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Ticket:      generateTicket(),
		AuthorID:    input.AuthorID,
		Status:      domain.CaseStatusPendiente,
	}
	if err := s.cases.Create(ctx, case_); err != nil {
		return nil, nil, apperrors.NewInternalError(fmt.Errorf("create case: %w", err))
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventCaseCreated,
		Payload: events.CaseCreatedPayload{
			CaseID:   case_.ID,
			Ticket:   case_.Ticket,
			AuthorID: case_.AuthorID,
			Title:    case_.Title,
		},
	})

	advisor, err := s.users.FirstByRole(ctx, domain.UserRoleAsesor)
	if err != nil {
		return nil, nil, apperrors.NewInternalError(fmt.Errorf("advisor lookup: %w", err))
	}

	assignee := &domain.Assignee{
		CaseID: case_.ID,
		UserID: advisor.ID,
	}
	if err := s.assignees.Create(ctx, assignee); err != nil {
		return nil, nil, apperrors.NewInternalError(fmt.Errorf("create assignee: %w", err))
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventCaseAssigned,
		Payload: events.CaseAssignedPayload{
			AssigneeID: assignee.ID,
			CaseID:     assignee.CaseID,
			AdvisorID:  assignee.UserID,
		},
	})

	return case_, assignee, nil
}

// generateTicket draws a uniform random integer from [0, 1000000) and renders
// it as a decimal string. No collision check against existing tickets.
func generateTicket() string {
	return strconv.Itoa(rand.Intn(1_000_000))
}

func (s *IntakeService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
