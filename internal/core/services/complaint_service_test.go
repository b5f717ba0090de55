package services

import (
	"context"
	"testing"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"
	"mnp-portal/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitForcesOwnerAndPendingStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(repositories.NewComplaintRepository(db))
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, 7, "billing")
	require.NoError(t, err)

	assert.Equal(t, uint(7), complaint.UserID)
	assert.Equal(t, models.ComplaintStatusPending, complaint.Status)
	assert.NotZero(t, complaint.ID)
}

func TestListIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(repositories.NewComplaintRepository(db))
	ctx := context.Background()

	_, err := svc.Submit(ctx, 1, "network coverage")
	require.NoError(t, err)

	mine, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "network coverage", mine[0].Reason)

	theirs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(repositories.NewComplaintRepository(db))
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, 1, "billing")
	require.NoError(t, err)

	// a different user may update it; there is no ownership check
	updated, err := svc.UpdateStatus(ctx, complaint.ID, models.ComplaintStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, updated.Status)
	assert.Equal(t, complaint.ID, updated.ID)
	assert.Equal(t, uint(1), updated.UserID)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(repositories.NewComplaintRepository(db))

	_, err := svc.UpdateStatus(context.Background(), 999, models.ComplaintStatusResolved)
	assert.ErrorIs(t, err, domain.ErrComplaintNotFound)
}
