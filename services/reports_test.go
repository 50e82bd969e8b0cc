package services

import (
	"testing"
	"time"

	"salonpos-backend/models"
	"salonpos-backend/store"
)

func TestGrowthPercent(t *testing.T) {
	if got := GrowthPercent(500, 0); got != 0 {
		// Division-by-zero guard: a zero prior period reports no change.
		t.Errorf("GrowthPercent(500, 0) = %v, want 0", got)
	}
	if got := GrowthPercent(150, 100); !almostEqual(got, 50) {
		t.Errorf("GrowthPercent(150, 100) = %v, want 50", got)
	}
	if got := GrowthPercent(50, 100); !almostEqual(got, -50) {
		t.Errorf("GrowthPercent(50, 100) = %v, want -50", got)
	}
	if got := GrowthPercent(0, 0); got != 0 {
		t.Errorf("GrowthPercent(0, 0) = %v, want 0", got)
	}
}

func reportStore(now time.Time) *store.Store {
	lastMonth := now.AddDate(0, -1, 0)

	stylists := []models.Stylist{
		{ID: "1", FirstName: "Emma", LastName: "Johnson", IsAvailable: true},
		{ID: "2", FirstName: "James", LastName: "Smith", IsAvailable: false},
		{ID: "3", FirstName: "Sophia", LastName: "Williams", IsAvailable: true},
	}
	services := []models.Service{
		{ID: "1", Name: "Haircut & Style"},
		{ID: "2", Name: "Full Color"},
		{ID: "3", Name: "Highlights"},
		{ID: "4", Name: "Manicure"},
	}
	appointments := []models.Appointment{
		{ID: "1", CustomerID: "1", StylistID: "1", StartTime: now, Status: models.AppointmentCompleted, TotalPrice: 45},
		{ID: "2", CustomerID: "2", StylistID: "2", StartTime: now.Add(time.Hour), Status: models.AppointmentScheduled, TotalPrice: 150},
		{ID: "3", CustomerID: "1", StylistID: "1", StartTime: now.Add(2 * time.Hour), Status: models.AppointmentInProgress, TotalPrice: 80},
		{ID: "4", CustomerID: "2", StylistID: "2", StartTime: lastMonth, Status: models.AppointmentCompleted, TotalPrice: 60},
	}
	transactions := []models.Transaction{
		{ID: "1", Total: 48.60, CreatedAt: now},
		{ID: "2", Total: 102.55, CreatedAt: now},
		{ID: "3", Total: 200.00, CreatedAt: lastMonth},
	}
	customers := []models.Customer{
		{ID: "1", FirstName: "Olivia", LastName: "Davis"},
		{ID: "2", FirstName: "Liam", LastName: "Miller"},
	}
	return store.New(customers, stylists, services, nil, nil, appointments, transactions, nil)
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	s := reportStore(now)

	overview := BuildDashboard(s, now)

	if len(overview.TodayAppointments) != 3 {
		t.Errorf("today's appointments = %d, want 3", len(overview.TodayAppointments))
	}
	if overview.CompletedCount != 1 || overview.ScheduledCount != 1 || overview.InProgressCount != 1 {
		t.Errorf("status counts = %d/%d/%d, want 1/1/1",
			overview.CompletedCount, overview.ScheduledCount, overview.InProgressCount)
	}
	if !almostEqual(overview.DailyRevenue, 48.60+102.55) {
		t.Errorf("daily revenue = %v, want %v", overview.DailyRevenue, 48.60+102.55)
	}
	if overview.TotalStylists != 3 || overview.AvailableStylists != 2 {
		t.Errorf("stylists = %d/%d available, want 3/2", overview.TotalStylists, overview.AvailableStylists)
	}
	if overview.TotalCustomers != 2 {
		t.Errorf("customers = %d, want 2", overview.TotalCustomers)
	}
	if len(overview.PopularServices) != 3 || overview.PopularServices[0].Name != "Haircut & Style" {
		t.Errorf("popular services should be the first 3 in fixture order: %+v", overview.PopularServices)
	}
}

func TestBuildAnalyticsMonthWindows(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	s := reportStore(now)

	summary := BuildAnalytics(s, now)

	if summary.ThisMonthAppointments != 3 {
		t.Errorf("this month appointments = %d, want 3", summary.ThisMonthAppointments)
	}
	if !almostEqual(summary.ThisMonthRevenue, 151.15) {
		t.Errorf("this month revenue = %v, want 151.15", summary.ThisMonthRevenue)
	}
	// last month: 200 revenue, 1 appointment
	if !almostEqual(summary.RevenueChange, (151.15-200)/200*100) {
		t.Errorf("revenue change = %v", summary.RevenueChange)
	}
	if !almostEqual(summary.AppointmentChange, 200) {
		t.Errorf("appointment change = %v, want 200", summary.AppointmentChange)
	}
	if len(summary.TopServices) != 4 {
		t.Errorf("top services = %d entries, want all 4 (fewer than the cap)", len(summary.TopServices))
	}
}

func TestBuildAnalyticsZeroPriorMonth(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	s := store.New(nil, nil, nil, nil, nil,
		[]models.Appointment{{ID: "1", StartTime: now, TotalPrice: 500}},
		[]models.Transaction{{ID: "1", Total: 500, CreatedAt: now}},
		nil)

	summary := BuildAnalytics(s, now)
	if summary.RevenueChange != 0 {
		t.Errorf("revenue change with empty prior month = %v, want 0", summary.RevenueChange)
	}
	if summary.AppointmentChange != 0 {
		t.Errorf("appointment change with empty prior month = %v, want 0", summary.AppointmentChange)
	}
}

func TestRankStylistsDescendingByRevenue(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	s := reportStore(now)

	ranking := RankStylists(s)
	if len(ranking) != 3 {
		t.Fatalf("got %d ranked stylists, want all 3", len(ranking))
	}
	// James: 150+60=210, Emma: 45+80=125, Sophia: 0.
	if ranking[0].Name != "James Smith" || !almostEqual(ranking[0].Revenue, 210) {
		t.Errorf("rank 1 = %+v, want James Smith at 210", ranking[0])
	}
	if ranking[1].Name != "Emma Johnson" || ranking[1].Appointments != 2 {
		t.Errorf("rank 2 = %+v, want Emma Johnson with 2 appointments", ranking[1])
	}
	if ranking[2].Name != "Sophia Williams" || ranking[2].Revenue != 0 {
		t.Errorf("rank 3 = %+v, want Sophia Williams with no revenue", ranking[2])
	}
}
