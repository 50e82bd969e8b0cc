package store

import (
	"testing"
)

func TestSeedDatasetShape(t *testing.T) {
	s := Seed()

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"customers", len(s.Customers()), 4},
		{"stylists", len(s.Stylists()), 4},
		{"services", len(s.Services()), 8},
		{"products", len(s.Products()), 5},
		{"categories", len(s.Categories()), 6},
		{"appointments", len(s.Appointments()), 4},
		{"transactions", len(s.Transactions()), 2},
		{"gift cards", len(s.GiftCards()), 2},
	}
	for _, check := range checks {
		if check.got != check.want {
			t.Errorf("%s: got %d, want %d", check.name, check.got, check.want)
		}
	}
}

func TestLookupsByID(t *testing.T) {
	s := Seed()

	if customer, ok := s.CustomerByID("2"); !ok || customer.FirstName != "Liam" {
		t.Errorf("CustomerByID(2) = %+v, %v", customer, ok)
	}
	if _, ok := s.CustomerByID("404"); ok {
		t.Errorf("CustomerByID(404) should not resolve")
	}
	if stylist, ok := s.StylistByID("3"); !ok || stylist.FirstName != "Sophia" {
		t.Errorf("StylistByID(3) = %+v, %v", stylist, ok)
	}
	if service, ok := s.ServiceByID("8"); !ok || service.Name != "Facial" {
		t.Errorf("ServiceByID(8) = %+v, %v", service, ok)
	}
	if product, ok := s.ProductByID("4"); !ok || product.Name != "Nail Polish" {
		t.Errorf("ProductByID(4) = %+v, %v", product, ok)
	}
	if category, ok := s.CategoryByID("1"); !ok || category.Name != "Hair Services" {
		t.Errorf("CategoryByID(1) = %+v, %v", category, ok)
	}
}

func TestSeedKeepsCategoryNameIDMismatch(t *testing.T) {
	// Services and products carry category display names, not category ids.
	// The list views look these up by id, so they must never resolve; this
	// guards against anyone "fixing" the dataset.
	s := Seed()

	for _, service := range s.Services() {
		if _, ok := s.CategoryByID(service.Category); ok {
			t.Errorf("service %q category %q unexpectedly resolves as a category id", service.Name, service.Category)
		}
	}
	for _, product := range s.Products() {
		if _, ok := s.CategoryByID(product.Category); ok {
			t.Errorf("product %q category %q unexpectedly resolves as a category id", product.Name, product.Category)
		}
	}
}

func TestSeedAppointmentsAnchoredToToday(t *testing.T) {
	s := Seed()
	for _, appointment := range s.Appointments() {
		if appointment.StartTime.IsZero() || appointment.EndTime.Before(appointment.StartTime) {
			t.Errorf("appointment %s has an invalid time range: %v - %v",
				appointment.ID, appointment.StartTime, appointment.EndTime)
		}
	}
}
