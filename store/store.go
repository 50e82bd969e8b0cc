// Package store holds the in-memory sample dataset behind read-only
// accessors. A Store is built once at startup and never mutated afterwards;
// handlers receive it explicitly so tests can substitute their own fixtures.
package store

import "salonpos-backend/models"

type Store struct {
	customers    []models.Customer
	stylists     []models.Stylist
	services     []models.Service
	products     []models.Product
	categories   []models.Category
	appointments []models.Appointment
	transactions []models.Transaction
	giftCards    []models.GiftCard
}

// New assembles a Store from entity slices. The slices are taken as-is and
// must not be modified by the caller afterwards.
func New(
	customers []models.Customer,
	stylists []models.Stylist,
	services []models.Service,
	products []models.Product,
	categories []models.Category,
	appointments []models.Appointment,
	transactions []models.Transaction,
	giftCards []models.GiftCard,
) *Store {
	return &Store{
		customers:    customers,
		stylists:     stylists,
		services:     services,
		products:     products,
		categories:   categories,
		appointments: appointments,
		transactions: transactions,
		giftCards:    giftCards,
	}
}

func (s *Store) Customers() []models.Customer       { return s.customers }
func (s *Store) Stylists() []models.Stylist         { return s.stylists }
func (s *Store) Services() []models.Service         { return s.services }
func (s *Store) Products() []models.Product         { return s.products }
func (s *Store) Categories() []models.Category      { return s.categories }
func (s *Store) Appointments() []models.Appointment { return s.appointments }
func (s *Store) Transactions() []models.Transaction { return s.transactions }
func (s *Store) GiftCards() []models.GiftCard       { return s.giftCards }

func (s *Store) CustomerByID(id string) (models.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *Store) StylistByID(id string) (models.Stylist, bool) {
	for _, st := range s.stylists {
		if st.ID == id {
			return st, true
		}
	}
	return models.Stylist{}, false
}

func (s *Store) ServiceByID(id string) (models.Service, bool) {
	for _, sv := range s.services {
		if sv.ID == id {
			return sv, true
		}
	}
	return models.Service{}, false
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) CategoryByID(id string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
