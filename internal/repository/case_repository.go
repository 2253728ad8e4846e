package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tostadas-valencia/case-service/internal/domain"
)

// CaseRepository encapsulates case persistence.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	GetByTicket(ctx context.Context, ticket string) (*domain.Case, error)
	List(ctx context.Context) ([]domain.Case, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Case, error)
}

type caseRepository struct {
	pool *pgxpool.Pool
}

// NewCaseRepository instantiates repository.
func NewCaseRepository(pool *pgxpool.Pool) CaseRepository {
	return &caseRepository{pool: pool}
}

func (r *caseRepository) Create(ctx context.Context, c *domain.Case) error {
	const query = `
        INSERT INTO cases (title, description, type, ticket, author_id, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		c.Title,
		c.Description,
		c.Type,
		c.Ticket,
		c.AuthorID,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *caseRepository) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	const query = `
        SELECT id, title, description, type, ticket, author_id, status, created_at
        FROM cases WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

// GetByTicket returns the first case carrying the ticket. Tickets are not
// unique; duplicates resolve in store order.
func (r *caseRepository) GetByTicket(ctx context.Context, ticket string) (*domain.Case, error) {
	const query = `
        SELECT id, title, description, type, ticket, author_id, status, created_at
        FROM cases WHERE ticket=$1 LIMIT 1`
	return r.fetchSingle(ctx, query, ticket)
}

func (r *caseRepository) List(ctx context.Context) ([]domain.Case, error) {
	const query = `
        SELECT id, title, description, type, ticket, author_id, status, created_at
        FROM cases`
	return r.fetchMany(ctx, query)
}

func (r *caseRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Case, error) {
	const query = `
        SELECT id, title, description, type, ticket, author_id, status, created_at
        FROM cases WHERE author_id=$1`
	return r.fetchMany(ctx, query, authorID)
}

func (r *caseRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Case, error) {
	var c domain.Case
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Type,
		&c.Ticket,
		&c.AuthorID,
		&c.Status,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Case, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCases(rows)
}

func scanCases(rows pgx.Rows) ([]domain.Case, error) {
	var result []domain.Case
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Type,
			&c.Ticket,
			&c.AuthorID,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
