package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tostadas-valencia/case-service/internal/domain"
)

// AssigneeRepository encapsulates assignee persistence. The First* lookups
// resolve multiple matches in store order.
type AssigneeRepository interface {
	Create(ctx context.Context, assignee *domain.Assignee) error
	GetByID(ctx context.Context, id int) (*domain.Assignee, error)
	FirstByUser(ctx context.Context, userID string) (*domain.Assignee, error)
	FirstByCase(ctx context.Context, caseID string) (*domain.Assignee, error)
	FirstByCaseTicket(ctx context.Context, ticket string) (*domain.Assignee, error)
	FirstByUserAndCase(ctx context.Context, userID, caseID string) (*domain.Assignee, error)
}

type assigneeRepository struct {
	pool *pgxpool.Pool
}

// NewAssigneeRepository returns a Postgres-backed implementation.
func NewAssigneeRepository(pool *pgxpool.Pool) AssigneeRepository {
	return &assigneeRepository{pool: pool}
}

func (r *assigneeRepository) Create(ctx context.Context, assignee *domain.Assignee) error {
	const query = `
        INSERT INTO assignees (case_id, user_id)
        VALUES ($1, $2)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		assignee.CaseID,
		assignee.UserID,
	).Scan(&assignee.ID)
}

func (r *assigneeRepository) GetByID(ctx context.Context, id int) (*domain.Assignee, error) {
	const query = `
        SELECT id, case_id, user_id
        FROM assignees WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *assigneeRepository) FirstByUser(ctx context.Context, userID string) (*domain.Assignee, error) {
	const query = `
        SELECT id, case_id, user_id
        FROM assignees WHERE user_id=$1 LIMIT 1`
	return r.fetchSingle(ctx, query, userID)
}

func (r *assigneeRepository) FirstByCase(ctx context.Context, caseID string) (*domain.Assignee, error) {
	const query = `
        SELECT id, case_id, user_id
        FROM assignees WHERE case_id=$1 LIMIT 1`
	return r.fetchSingle(ctx, query, caseID)
}

// FirstByCaseTicket resolves the assignee through the case's ticket number.
func (r *assigneeRepository) FirstByCaseTicket(ctx context.Context, ticket string) (*domain.Assignee, error) {
	const query = `
        SELECT a.id, a.case_id, a.user_id
        FROM assignees a
        JOIN cases c ON c.id = a.case_id
        WHERE c.ticket=$1 LIMIT 1`
	return r.fetchSingle(ctx, query, ticket)
}

func (r *assigneeRepository) FirstByUserAndCase(ctx context.Context, userID, caseID string) (*domain.Assignee, error) {
	const query = `
        SELECT id, case_id, user_id
        FROM assignees WHERE user_id=$1 AND case_id=$2 LIMIT 1`
	return r.fetchSingle(ctx, query, userID, caseID)
}

func (r *assigneeRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Assignee, error) {
	var assignee domain.Assignee
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&assignee.ID,
		&assignee.CaseID,
		&assignee.UserID,
	); err != nil {
		return nil, err
	}
	return &assignee, nil
}
