package services

import (
	"sort"
	"time"

	"salonpos-backend/models"
	"salonpos-backend/store"
	"salonpos-backend/utils"
)

// DashboardOverview summarizes the current day for the landing page.
type DashboardOverview struct {
	DailyRevenue      float64          `json:"dailyRevenue"`
	TodayAppointments []AppointmentRow `json:"todayAppointments"`
	CompletedCount    int              `json:"completedCount"`
	ScheduledCount    int              `json:"scheduledCount"`
	InProgressCount   int              `json:"inProgressCount"`
	TotalCustomers    int              `json:"totalCustomers"`
	TotalStylists     int              `json:"totalStylists"`
	AvailableStylists int              `json:"availableStylists"`
	PopularServices   []models.Service `json:"popularServices"`
}

// AnalyticsSummary is the reports page payload: month-over-month revenue and
// appointment movement plus rankings.
type AnalyticsSummary struct {
	ThisMonthRevenue      float64              `json:"thisMonthRevenue"`
	RevenueChange         float64              `json:"revenueChange"`
	ThisMonthAppointments int                  `json:"thisMonthAppointments"`
	AppointmentChange     float64              `json:"appointmentChange"`
	TopServices           []models.Service     `json:"topServices"`
	StylistPerformance    []StylistPerformance `json:"stylistPerformance"`
}

type StylistPerformance struct {
	StylistID    string  `json:"stylistId"`
	Name         string  `json:"name"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// BuildDashboard computes the overview fresh from the store for the given
// moment. Nothing is cached between calls.
func BuildDashboard(s *store.Store, now time.Time) DashboardOverview {
	overview := DashboardOverview{
		TodayAppointments: []AppointmentRow{},
		PopularServices:   []models.Service{},
		TotalCustomers:    len(s.Customers()),
		TotalStylists:     len(s.Stylists()),
	}

	for _, appointment := range s.Appointments() {
		if !utils.SameDay(appointment.StartTime, now) {
			continue
		}
		overview.TodayAppointments = append(overview.TodayAppointments, appointmentRow(s, appointment))
		switch appointment.Status {
		case models.AppointmentCompleted:
			overview.CompletedCount++
		case models.AppointmentScheduled:
			overview.ScheduledCount++
		case models.AppointmentInProgress:
			overview.InProgressCount++
		}
	}

	for _, transaction := range s.Transactions() {
		if utils.SameDay(transaction.CreatedAt, now) {
			overview.DailyRevenue += transaction.Total
		}
	}

	for _, stylist := range s.Stylists() {
		if stylist.IsAvailable {
			overview.AvailableStylists++
		}
	}

	// The first few services stand in for "most popular"; there is no
	// popularity signal in the data.
	overview.PopularServices = firstServices(s.Services(), 3)

	return overview
}

// BuildAnalytics computes the month-over-month report for the given moment.
func BuildAnalytics(s *store.Store, now time.Time) AnalyticsSummary {
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var thisMonthAppointments, lastMonthAppointments int
	for _, appointment := range s.Appointments() {
		switch {
		case !appointment.StartTime.Before(thisMonth):
			thisMonthAppointments++
		case !appointment.StartTime.Before(lastMonth):
			lastMonthAppointments++
		}
	}

	var thisMonthRevenue, lastMonthRevenue float64
	for _, transaction := range s.Transactions() {
		switch {
		case !transaction.CreatedAt.Before(thisMonth):
			thisMonthRevenue += transaction.Total
		case !transaction.CreatedAt.Before(lastMonth):
			lastMonthRevenue += transaction.Total
		}
	}

	return AnalyticsSummary{
		ThisMonthRevenue:      thisMonthRevenue,
		RevenueChange:         GrowthPercent(thisMonthRevenue, lastMonthRevenue),
		ThisMonthAppointments: thisMonthAppointments,
		AppointmentChange:     GrowthPercent(float64(thisMonthAppointments), float64(lastMonthAppointments)),
		TopServices:           firstServices(s.Services(), 5),
		StylistPerformance:    RankStylists(s),
	}
}

// GrowthPercent is the month-over-month change in percent. A zero previous
// period reports 0, not an error or NaN.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// RankStylists sums appointment revenue per stylist and sorts descending by
// revenue. Every stylist appears, including those with no appointments.
func RankStylists(s *store.Store) []StylistPerformance {
	ranking := []StylistPerformance{}
	for _, stylist := range s.Stylists() {
		perf := StylistPerformance{
			StylistID: stylist.ID,
			Name:      stylist.FullName(),
		}
		for _, appointment := range s.Appointments() {
			if appointment.StylistID == stylist.ID {
				perf.Appointments++
				perf.Revenue += appointment.TotalPrice
			}
		}
		ranking = append(ranking, perf)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue > ranking[j].Revenue
	})
	return ranking
}

func firstServices(services []models.Service, n int) []models.Service {
	if len(services) < n {
		n = len(services)
	}
	out := make([]models.Service, n)
	copy(out, services[:n])
	return out
}
