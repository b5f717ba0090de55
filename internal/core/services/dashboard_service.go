package services

import (
	"context"
	"time"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"
)

// DashboardService computes aggregate statistics over the collections.
// Every call counts fresh; nothing is cached.
type DashboardService struct {
	subscriberRepo repositories.SubscriberRepository
	complaintRepo  repositories.ComplaintRepository
	portInRepo     repositories.PortInRepository
	portOutRepo    repositories.PortOutRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	subscriberRepo repositories.SubscriberRepository,
	complaintRepo repositories.ComplaintRepository,
	portInRepo repositories.PortInRepository,
	portOutRepo repositories.PortOutRepository,
) *DashboardService {
	return &DashboardService{
		subscriberRepo: subscriberRepo,
		complaintRepo:  complaintRepo,
		portInRepo:     portInRepo,
		portOutRepo:    portOutRepo,
	}
}

// Stats represents the dashboard summary counts
type Stats struct {
	TotalSubscribers   int64 `json:"totalSubscribers"`
	PortInToday        int64 `json:"portInToday"`
	PortOutToday       int64 `json:"portOutToday"`
	PendingComplaints  int64 `json:"pendingComplaints"`
	ResolvedComplaints int64 `json:"resolvedComplaints"`
	FailedComplaints   int64 `json:"failedComplaints"`
}

// GetStats returns the dashboard summary. "Today" is the half-open
// interval [local midnight, local midnight + 24h) at read time.
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	totalSubscribers, err := s.subscriberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalComplaints, err := s.complaintRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusResolved)
	if err != nil {
		return nil, err
	}

	pending, err := s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusPending)
	if err != nil {
		return nil, err
	}

	portInToday, err := s.portInRepo.CountByDateRange(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}

	portOutToday, err := s.portOutRepo.CountByDateRange(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}

	// Complaints in any status other than pending/resolved count as
	// failed; clamped so the remainder never goes negative.
	failed := totalComplaints - resolved - pending
	if failed < 0 {
		failed = 0
	}

	return &Stats{
		TotalSubscribers:   totalSubscribers,
		PortInToday:        portInToday,
		PortOutToday:       portOutToday,
		PendingComplaints:  pending,
		ResolvedComplaints: resolved,
		FailedComplaints:   failed,
	}, nil
}

// GetReasonBreakdown returns complaints grouped by reason, ordered by
// count descending
func (s *DashboardService) GetReasonBreakdown(ctx context.Context) ([]repositories.ReasonCount, error) {
	return s.complaintRepo.CountByReason(ctx)
}
