package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"salonpos-backend/services"
	"salonpos-backend/store"

	"github.com/gin-gonic/gin"
)

func readTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.Seed()

	r := gin.New()
	api := r.Group("/api")
	{
		cc := NewCustomerController(st)
		api.GET("/customers", cc.GetCustomers)
		api.GET("/customers/:id", cc.GetCustomer)
		sc := NewServiceController(st)
		api.GET("/services", sc.GetServices)
		ac := NewAppointmentController(st)
		api.GET("/appointments", ac.GetAppointments)
	}
	return r
}

func TestGetServicesAlwaysUncategorized(t *testing.T) {
	r := readTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/services", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var rows []services.ServiceRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode services: %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("got %d services, want 8", len(rows))
	}
	for _, row := range rows {
		if row.CategoryName != services.UncategorizedLabel {
			t.Errorf("service %q badge = %q, want %q", row.Name, row.CategoryName, services.UncategorizedLabel)
		}
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	r := readTestRouter()
	if w := doRequest(t, r, http.MethodGet, "/api/customers/404", nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetCustomersSearch(t *testing.T) {
	r := readTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/customers?search=liam", nil)
	var customers []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &customers); err != nil {
		t.Fatalf("decode customers: %v", err)
	}
	if len(customers) != 1 || customers[0]["firstName"] != "Liam" {
		t.Errorf("search result = %+v, want Liam Miller only", customers)
	}
}

func TestGetAppointmentsRejectsBadDate(t *testing.T) {
	r := readTestRouter()
	if w := doRequest(t, r, http.MethodGet, "/api/appointments?date=tomorrow", nil); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetAppointmentsEmptyDayIsEmptyList(t *testing.T) {
	r := readTestRouter()

	// The seeded appointments are anchored to today, so a fixed past date
	// matches nothing. Empty results are an empty list, not an error.
	w := doRequest(t, r, http.MethodGet, "/api/appointments?date=2000-01-01", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}
