package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StatsCronService logs a dashboard stats snapshot once a day.
// Observability only; it never writes.
type StatsCronService struct {
	cron      *cron.Cron
	dashboard *DashboardService
}

// NewStatsCronService creates a new stats cron service
func NewStatsCronService(dashboard *DashboardService) *StatsCronService {
	return &StatsCronService{
		cron:      cron.New(),
		dashboard: dashboard,
	}
}

// Start schedules the daily summary at midnight
func (s *StatsCronService) Start() {
	if _, err := s.cron.AddFunc("0 0 * * *", s.logDailySummary); err != nil {
		log.Printf("Failed to schedule daily stats summary: %v", err)
		return
	}
	s.cron.Start()
	log.Println("StatsCronService started (daily summary at 00:00)")
}

// Stop stops the scheduler
func (s *StatsCronService) Stop() {
	s.cron.Stop()
	log.Println("StatsCronService stopped")
}

func (s *StatsCronService) logDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := s.dashboard.GetStats(ctx)
	if err != nil {
		log.Printf("Daily stats summary failed: %v", err)
		return
	}

	log.Printf("Daily stats: subscribers=%d portInToday=%d portOutToday=%d pending=%d resolved=%d failed=%d",
		stats.TotalSubscribers,
		stats.PortInToday,
		stats.PortOutToday,
		stats.PendingComplaints,
		stats.ResolvedComplaints,
		stats.FailedComplaints,
	)
}
