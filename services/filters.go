package services

import (
	"strings"
	"time"

	"salonpos-backend/models"
	"salonpos-backend/store"
	"salonpos-backend/utils"
)

// UncategorizedLabel is shown when a category badge cannot be resolved.
// Services and products store the category display name while categories are
// keyed by numeric id, so the id lookup below never matches and every row
// falls back to this label. The mismatch ships with the dataset and is kept
// rather than fixed; see DESIGN.md.
const UncategorizedLabel = "Uncategorized"

// Display strings for dangling references. Missing entities degrade to these
// labels instead of erroring.
const (
	UnknownCustomerLabel = "Unknown Customer"
	UnknownStylistLabel  = "Unknown Stylist"
)

// ServiceRow is a service list entry with its resolved category badge.
type ServiceRow struct {
	models.Service
	CategoryName string `json:"categoryName"`
}

// ProductRow is a product list entry with its resolved category badge.
type ProductRow struct {
	models.Product
	CategoryName string `json:"categoryName"`
}

// AppointmentRow is an appointment with customer, stylist, and service names
// joined in for display.
type AppointmentRow struct {
	models.Appointment
	CustomerName string `json:"customerName"`
	StylistName  string `json:"stylistName"`
	ServiceNames string `json:"serviceNames"`
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// CategoryDisplayName resolves a category badge by id. The stored key is a
// display name, so this returns UncategorizedLabel for every fixture row.
func CategoryDisplayName(s *store.Store, key string) string {
	if category, ok := s.CategoryByID(key); ok {
		return category.Name
	}
	return UncategorizedLabel
}

// FilterCustomers matches the search term case-insensitively against the
// "first last" name or email, and as a raw substring against the phone
// number. An empty term matches everyone.
func FilterCustomers(customers []models.Customer, term string) []models.Customer {
	matched := []models.Customer{}
	for _, customer := range customers {
		if containsFold(customer.FullName(), term) ||
			containsFold(customer.Email, term) ||
			strings.Contains(customer.Phone, term) {
			matched = append(matched, customer)
		}
	}
	return matched
}

// FilterServices matches against service name or description.
func FilterServices(s *store.Store, term string) []ServiceRow {
	rows := []ServiceRow{}
	for _, service := range s.Services() {
		if containsFold(service.Name, term) || containsFold(service.Description, term) {
			rows = append(rows, ServiceRow{
				Service:      service,
				CategoryName: CategoryDisplayName(s, service.Category),
			})
		}
	}
	return rows
}

// FilterProducts matches against product name or description.
func FilterProducts(s *store.Store, term string) []ProductRow {
	rows := []ProductRow{}
	for _, product := range s.Products() {
		if containsFold(product.Name, term) || containsFold(product.Description, term) {
			rows = append(rows, ProductRow{
				Product:      product,
				CategoryName: CategoryDisplayName(s, product.Category),
			})
		}
	}
	return rows
}

// FilterAppointments narrows appointments by calendar day and by customer
// name. A nil date or empty term leaves that filter inactive; when both are
// active an appointment must satisfy both. Input order is preserved.
func FilterAppointments(s *store.Store, date *time.Time, term string) []AppointmentRow {
	rows := []AppointmentRow{}
	for _, appointment := range s.Appointments() {
		if date != nil && !utils.SameDay(appointment.StartTime, *date) {
			continue
		}
		if term != "" {
			customerName := ""
			if customer, ok := s.CustomerByID(appointment.CustomerID); ok {
				customerName = customer.FullName()
			}
			if !containsFold(customerName, term) {
				continue
			}
		}
		rows = append(rows, appointmentRow(s, appointment))
	}
	return rows
}

// CustomerAppointments is a customer's visit history, in fixture order.
func CustomerAppointments(s *store.Store, customerID string) []AppointmentRow {
	rows := []AppointmentRow{}
	for _, appointment := range s.Appointments() {
		if appointment.CustomerID == customerID {
			rows = append(rows, appointmentRow(s, appointment))
		}
	}
	return rows
}

// CatalogItem is an orderable entry on the register screen.
type CatalogItem struct {
	ID       string          `json:"id"`
	Type     models.ItemType `json:"type"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Duration int             `json:"duration,omitempty"` // services only
	InStock  int             `json:"inStock,omitempty"`  // products only
}

// Catalog lists what the register can sell: active services matching the
// term, and active products matching the term that have stock on hand.
func Catalog(s *store.Store, term string) []CatalogItem {
	items := []CatalogItem{}
	for _, service := range s.Services() {
		if service.IsActive && containsFold(service.Name, term) {
			items = append(items, CatalogItem{
				ID:       service.ID,
				Type:     models.ItemTypeService,
				Name:     service.Name,
				Price:    service.Price,
				Duration: service.Duration,
			})
		}
	}
	for _, product := range s.Products() {
		if product.IsActive && product.QuantityInStock > 0 && containsFold(product.Name, term) {
			items = append(items, CatalogItem{
				ID:      product.ID,
				Type:    models.ItemTypeProduct,
				Name:    product.Name,
				Price:   product.Price,
				InStock: product.QuantityInStock,
			})
		}
	}
	return items
}

func appointmentRow(s *store.Store, appointment models.Appointment) AppointmentRow {
	customerName := UnknownCustomerLabel
	if customer, ok := s.CustomerByID(appointment.CustomerID); ok {
		customerName = customer.FullName()
	}

	stylistName := UnknownStylistLabel
	if stylist, ok := s.StylistByID(appointment.StylistID); ok {
		stylistName = stylist.FullName()
	}

	// Unknown service ids are dropped from the joined list.
	names := []string{}
	for _, serviceID := range appointment.ServiceIDs {
		if service, ok := s.ServiceByID(serviceID); ok {
			names = append(names, service.Name)
		}
	}

	return AppointmentRow{
		Appointment:  appointment,
		CustomerName: customerName,
		StylistName:  stylistName,
		ServiceNames: strings.Join(names, ", "),
	}
}
