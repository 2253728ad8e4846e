package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tostadas-valencia/case-service/internal/domain"
	"github.com/tostadas-valencia/case-service/internal/events"
)

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User) error
	getByIDFn     func(ctx context.Context, id string) (*domain.User, error)
	getByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	listFn        func(ctx context.Context) ([]domain.User, error)
	firstByRoleFn func(ctx context.Context, role domain.UserRole) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FirstByRole(ctx context.Context, role domain.UserRole) (*domain.User, error) {
	if m.firstByRoleFn != nil {
		return m.firstByRoleFn(ctx, role)
	}
	return nil, pgx.ErrNoRows
}

type mockCaseRepo struct {
	createFn       func(ctx context.Context, c *domain.Case) error
	getByIDFn      func(ctx context.Context, id string) (*domain.Case, error)
	getByTicketFn  func(ctx context.Context, ticket string) (*domain.Case, error)
	listFn         func(ctx context.Context) ([]domain.Case, error)
	listByAuthorFn func(ctx context.Context, authorID string) ([]domain.Case, error)
}

func (m *mockCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = "case-1"
	return nil
}

func (m *mockCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockCaseRepo) GetByTicket(ctx context.Context, ticket string) (*domain.Case, error) {
	if m.getByTicketFn != nil {
		return m.getByTicketFn(ctx, ticket)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockCaseRepo) List(ctx context.Context) ([]domain.Case, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCaseRepo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Case, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

type mockAssigneeRepo struct {
	createFn             func(ctx context.Context, assignee *domain.Assignee) error
	getByIDFn            func(ctx context.Context, id int) (*domain.Assignee, error)
	firstByUserFn        func(ctx context.Context, userID string) (*domain.Assignee, error)
	firstByCaseFn        func(ctx context.Context, caseID string) (*domain.Assignee, error)
	firstByCaseTicketFn  func(ctx context.Context, ticket string) (*domain.Assignee, error)
	firstByUserAndCaseFn func(ctx context.Context, userID, caseID string) (*domain.Assignee, error)
}

func (m *mockAssigneeRepo) Create(ctx context.Context, assignee *domain.Assignee) error {
	if m.createFn != nil {
		return m.createFn(ctx, assignee)
	}
	assignee.ID = 1
	return nil
}

func (m *mockAssigneeRepo) GetByID(ctx context.Context, id int) (*domain.Assignee, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAssigneeRepo) FirstByUser(ctx context.Context, userID string) (*domain.Assignee, error) {
	if m.firstByUserFn != nil {
		return m.firstByUserFn(ctx, userID)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAssigneeRepo) FirstByCase(ctx context.Context, caseID string) (*domain.Assignee, error) {
	if m.firstByCaseFn != nil {
		return m.firstByCaseFn(ctx, caseID)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAssigneeRepo) FirstByCaseTicket(ctx context.Context, ticket string) (*domain.Assignee, error) {
	if m.firstByCaseTicketFn != nil {
		return m.firstByCaseTicketFn(ctx, ticket)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAssigneeRepo) FirstByUserAndCase(ctx context.Context, userID, caseID string) (*domain.Assignee, error) {
	if m.firstByUserAndCaseFn != nil {
		return m.firstByUserAndCaseFn(ctx, userID, caseID)
	}
	return nil, pgx.ErrNoRows
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
