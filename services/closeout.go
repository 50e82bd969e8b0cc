package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"salonpos-backend/store"
)

// CloseoutService logs an end-of-day summary on a schedule. It only reads
// from the store; closing the register does not mutate anything.
type CloseoutService struct {
	store    *store.Store
	schedule string
	cron     *cron.Cron
}

func NewCloseoutService(s *store.Store, schedule string) *CloseoutService {
	return &CloseoutService{
		store:    s,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// StartScheduler registers the daily closeout job and starts the cron loop.
func (s *CloseoutService) StartScheduler() error {
	if _, err := s.cron.AddFunc(s.schedule, s.LogDailySummary); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Closeout scheduler started (%s)", s.schedule)
	return nil
}

func (s *CloseoutService) Stop() {
	s.cron.Stop()
}

// LogDailySummary writes the day's numbers to the log.
func (s *CloseoutService) LogDailySummary() {
	overview := BuildDashboard(s.store, time.Now())
	log.Printf("Daily closeout: revenue $%.2f | %d appointments (%d completed, %d in progress, %d scheduled)",
		overview.DailyRevenue,
		len(overview.TodayAppointments),
		overview.CompletedCount,
		overview.InProgressCount,
		overview.ScheduledCount,
	)
}
