package services

import (
	"context"
	"testing"
	"time"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repositories.NewSubscriberRepository(db),
		repositories.NewComplaintRepository(db),
		repositories.NewPortInRepository(db),
		repositories.NewPortOutRepository(db),
	)
}

func TestGetStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalSubscribers)
	assert.Zero(t, stats.PortInToday)
	assert.Zero(t, stats.PortOutToday)
	assert.Zero(t, stats.PendingComplaints)
	assert.Zero(t, stats.ResolvedComplaints)
	// clamped, never negative
	assert.Zero(t, stats.FailedComplaints)
}

func TestGetStatsCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Subscriber{MSISDN: 9876543210, Status: "ACTIVE"}).Error)
	require.NoError(t, db.Create(&models.Subscriber{MSISDN: 9876543211, Status: "PORTED"}).Error)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	require.NoError(t, db.Create(&models.PortIn{Number: "9876543210", Operator: "AirWave", Circle: "Delhi", Date: now}).Error)
	require.NoError(t, db.Create(&models.PortIn{Number: "9876543211", Operator: "AirWave", Circle: "Delhi", Date: yesterday}).Error)
	require.NoError(t, db.Create(&models.PortOut{Number: "9876543212", Reason: "tariff", Date: now}).Error)

	complaints := []models.Complaint{
		{Reason: "billing", Status: models.ComplaintStatusPending, UserID: 1},
		{Reason: "billing", Status: models.ComplaintStatusResolved, UserID: 1},
		{Reason: "network", Status: "escalated", UserID: 2},
	}
	for i := range complaints {
		require.NoError(t, db.Create(&complaints[i]).Error)
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalSubscribers)
	assert.Equal(t, int64(1), stats.PortInToday)
	assert.Equal(t, int64(1), stats.PortOutToday)
	assert.Equal(t, int64(1), stats.PendingComplaints)
	assert.Equal(t, int64(1), stats.ResolvedComplaints)
	// the escalated one lands in the failed bucket
	assert.Equal(t, int64(1), stats.FailedComplaints)
}

func TestGetReasonBreakdown(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	for _, reason := range []string{"billing", "billing", "network"} {
		require.NoError(t, db.Create(&models.Complaint{Reason: reason, Status: models.ComplaintStatusPending, UserID: 1}).Error)
	}

	breakdown, err := svc.GetReasonBreakdown(context.Background())
	require.NoError(t, err)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "billing", breakdown[0].Reason)
	assert.Equal(t, int64(2), breakdown[0].Count)
	assert.Equal(t, "network", breakdown[1].Reason)
	assert.Equal(t, int64(1), breakdown[1].Count)
}
