package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tostadas-valencia/case-service/internal/domain"
	"github.com/tostadas-valencia/case-service/internal/repository"
	apperrors "github.com/tostadas-valencia/case-service/pkg/util"
)

// CaseService exposes case reads.
type CaseService struct {
	cases repository.CaseRepository
	users repository.UserRepository
}

// NewCaseService constructs the service.
func NewCaseService(cases repository.CaseRepository, users repository.UserRepository) *CaseService {
	return &CaseService{cases: cases, users: users}
}

// List returns all cases. An empty store is an empty list, not an error.
func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return cases, nil
}

// GetByID returns the case with the given identifier.
func (s *CaseService) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	case_, err := s.cases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No se encontró el caso con el ID proporcionado")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return case_, nil
}

// GetByTicket returns the first case carrying the ticket number.
func (s *CaseService) GetByTicket(ctx context.Context, ticket string) (*domain.Case, error) {
	case_, err := s.cases.GetByTicket(ctx, ticket)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No se encontró el caso con el número de ticket")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return case_, nil
}

// ListByAuthorID returns the cases opened by a user. Unlike List, zero
// matches signal NotFound here.
func (s *CaseService) ListByAuthorID(ctx context.Context, authorID string) ([]domain.Case, error) {
	cases, err := s.cases.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(cases) == 0 {
		return nil, apperrors.NewNotFound("No se encontraron casos para el ID de usuario")
	}
	return cases, nil
}

// ListByAuthorEmail resolves the author by email and then lists their cases.
// Both a missing user and an empty result signal NotFound with the same
// message.
func (s *CaseService) ListByAuthorEmail(ctx context.Context, email string) ([]domain.Case, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No se encontró el usuario")
		}
		return nil, apperrors.NewInternalError(err)
	}

	cases, err := s.cases.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(cases) == 0 {
		return nil, apperrors.NewNotFound("No se encontró el usuario")
	}
	return cases, nil
}
