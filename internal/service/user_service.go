package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tostadas-valencia/case-service/internal/domain"
	"github.com/tostadas-valencia/case-service/internal/events"
	"github.com/tostadas-valencia/case-service/internal/repository"
	apperrors "github.com/tostadas-valencia/case-service/pkg/util"
)

// UserService exposes user reads and the idempotent signup flow.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// List returns all users. An empty store is an empty list, not an error.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// GetByEmail returns the user owning the email address.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ningun usuario asociado al correo electronico " + email)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// GetByID returns the user with the given identifier.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ningun usuario asociado al id " + id)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// FindOrCreate looks a user up by email and creates one when absent. Email is
// the natural key: for an existing user the supplied name is ignored, even
// when it differs from the stored value. New users get no password and the
// store-default role.
func (s *UserService) FindOrCreate(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	user = &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.publishRegistered(ctx, user)
	return user, nil
}

func (s *UserService) publishRegistered(ctx context.Context, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
		},
	})
}
