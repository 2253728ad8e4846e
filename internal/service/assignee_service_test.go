package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tostadas-valencia/case-service/internal/domain"
)

// Missing assignees are a nil result, never an error: the HTTP surface needs
// to answer 200 with a null payload.
func TestAssigneeLookups_AbsenceIsNil(t *testing.T) {
	svc := NewAssigneeService(&mockAssigneeRepo{})
	ctx := context.Background()

	for name, lookup := range map[string]func() (*domain.Assignee, error){
		"by id":            func() (*domain.Assignee, error) { return svc.GetByID(ctx, 42) },
		"by user":          func() (*domain.Assignee, error) { return svc.FirstByUser(ctx, "user-1") },
		"by case":          func() (*domain.Assignee, error) { return svc.FirstByCase(ctx, "case-1") },
		"by case ticket":   func() (*domain.Assignee, error) { return svc.FirstByCaseTicket(ctx, "123456") },
		"by user and case": func() (*domain.Assignee, error) { return svc.FirstByUserAndCase(ctx, "user-1", "case-1") },
	} {
		assignee, err := lookup()
		assert.NoError(t, err, name)
		assert.Nil(t, assignee, name)
	}
}

func TestAssigneeGetByID_ReturnsMatch(t *testing.T) {
	repo := &mockAssigneeRepo{
		getByIDFn: func(ctx context.Context, id int) (*domain.Assignee, error) {
			return &domain.Assignee{ID: id, CaseID: "case-1", UserID: "advisor-1"}, nil
		},
	}
	svc := NewAssigneeService(repo)

	assignee, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, assignee.ID)
	assert.Equal(t, "case-1", assignee.CaseID)
}

func TestAssigneeLookups_RealErrorsPropagate(t *testing.T) {
	repo := &mockAssigneeRepo{
		firstByCaseFn: func(ctx context.Context, caseID string) (*domain.Assignee, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewAssigneeService(repo)

	_, err := svc.FirstByCase(context.Background(), "case-1")
	require.Error(t, err)
}
