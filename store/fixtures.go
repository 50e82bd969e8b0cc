package store

import (
	"time"

	"salonpos-backend/models"
)

// Seed builds the sample salon dataset. Appointment and transaction
// timestamps are anchored to the current day so the dashboard has data to
// show on any date the server starts.
//
// Note the categories are keyed by numeric id while services and products
// carry the category display name. The category badge lookup in the list
// views matches names against ids and therefore never resolves; that quirk
// is part of the dataset and is kept on purpose.
func Seed() *Store {
	now := time.Now()
	today := func(hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	}

	categories := []models.Category{
		{ID: "1", Name: "Hair Services", Type: models.ItemTypeService, IsActive: true},
		{ID: "2", Name: "Nail Services", Type: models.ItemTypeService, IsActive: true},
		{ID: "3", Name: "Spa Services", Type: models.ItemTypeService, IsActive: true},
		{ID: "4", Name: "Hair Products", Type: models.ItemTypeProduct, IsActive: true},
		{ID: "5", Name: "Nail Products", Type: models.ItemTypeProduct, IsActive: true},
		{ID: "6", Name: "Spa Products", Type: models.ItemTypeProduct, IsActive: true},
	}

	services := []models.Service{
		{ID: "1", Name: "Haircut & Style", Description: "Professional haircut with styling", Duration: 45, Price: 45.00, Category: "Hair Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "2", Name: "Full Color", Description: "Full hair color service", Duration: 90, Price: 120.00, Category: "Hair Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "3", Name: "Highlights", Description: "Partial or full highlights", Duration: 120, Price: 150.00, Category: "Hair Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "4", Name: "Manicure", Description: "Classic manicure with polish", Duration: 30, Price: 25.00, Category: "Nail Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "5", Name: "Pedicure", Description: "Classic pedicure with polish", Duration: 45, Price: 35.00, Category: "Nail Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "6", Name: "Gel Manicure", Description: "Gel polish manicure", Duration: 60, Price: 45.00, Category: "Nail Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "7", Name: "Gel Pedicure", Description: "Gel polish pedicure", Duration: 75, Price: 55.00, Category: "Nail Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "8", Name: "Facial", Description: "Relaxing facial treatment", Duration: 60, Price: 80.00, Category: "Spa Services", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	products := []models.Product{
		{ID: "1", Name: "Shampoo", Description: "Professional grade shampoo", Price: 24.99, Cost: 12.00, QuantityInStock: 50, Category: "Hair Products", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "2", Name: "Conditioner", Description: "Professional grade conditioner", Price: 24.99, Cost: 12.00, QuantityInStock: 45, Category: "Hair Products", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "3", Name: "Hair Serum", Description: "Repairing hair serum", Price: 39.99, Cost: 20.00, QuantityInStock: 30, Category: "Hair Products", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "4", Name: "Nail Polish", Description: "Premium nail polish", Price: 14.99, Cost: 7.00, QuantityInStock: 100, Category: "Nail Products", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "5", Name: "Nail File Set", Description: "Professional nail file set", Price: 19.99, Cost: 8.00, QuantityInStock: 25, Category: "Nail Products", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	stylists := []models.Stylist{
		{ID: "1", FirstName: "Emma", LastName: "Johnson", Email: "emma@salon.com", Phone: "555-0101", Specialties: []string{"Haircut & Style", "Full Color"}, CommissionRate: 0.35, IsAvailable: true, CreatedAt: now, UpdatedAt: now},
		{ID: "2", FirstName: "James", LastName: "Smith", Email: "james@salon.com", Phone: "555-0102", Specialties: []string{"Highlights", "Haircut & Style"}, CommissionRate: 0.35, IsAvailable: true, CreatedAt: now, UpdatedAt: now},
		{ID: "3", FirstName: "Sophia", LastName: "Williams", Email: "sophia@salon.com", Phone: "555-0103", Specialties: []string{"Manicure", "Pedicure", "Gel Manicure"}, CommissionRate: 0.40, IsAvailable: true, CreatedAt: now, UpdatedAt: now},
		{ID: "4", FirstName: "Michael", LastName: "Brown", Email: "michael@salon.com", Phone: "555-0104", Specialties: []string{"Facial", "Spa Services"}, CommissionRate: 0.40, IsAvailable: true, CreatedAt: now, UpdatedAt: now},
	}

	customers := []models.Customer{
		{ID: "1", FirstName: "Olivia", LastName: "Davis", Email: "olivia@example.com", Phone: "555-0201", LoyaltyPoints: 120, CreatedAt: now, UpdatedAt: now},
		{ID: "2", FirstName: "Liam", LastName: "Miller", Email: "liam@example.com", Phone: "555-0202", LoyaltyPoints: 85, CreatedAt: now, UpdatedAt: now},
		{ID: "3", FirstName: "Ava", LastName: "Wilson", Email: "ava@example.com", Phone: "555-0203", LoyaltyPoints: 210, CreatedAt: now, UpdatedAt: now},
		{ID: "4", FirstName: "Noah", LastName: "Moore", Email: "noah@example.com", Phone: "555-0204", LoyaltyPoints: 45, CreatedAt: now, UpdatedAt: now},
	}

	giftCards := []models.GiftCard{
		{ID: "1", Code: "GC1001", InitialAmount: 100.00, Balance: 75.00, IssuedAt: now, ExpiresAt: now.AddDate(1, 0, 0), IsActive: true},
		{ID: "2", Code: "GC1002", InitialAmount: 50.00, Balance: 0.00, IssuedAt: now, ExpiresAt: now.AddDate(1, 0, 0), IsActive: false},
	}

	appointments := []models.Appointment{
		{ID: "1", CustomerID: "1", StylistID: "1", ServiceIDs: []string{"1"}, StartTime: today(9, 0), EndTime: today(9, 45), Status: models.AppointmentCompleted, TotalPrice: 45.00, CreatedAt: now, UpdatedAt: now},
		{ID: "2", CustomerID: "2", StylistID: "2", ServiceIDs: []string{"3"}, StartTime: today(10, 0), EndTime: today(12, 0), Status: models.AppointmentInProgress, TotalPrice: 150.00, CreatedAt: now, UpdatedAt: now},
		{ID: "3", CustomerID: "3", StylistID: "3", ServiceIDs: []string{"6", "7"}, StartTime: today(13, 0), EndTime: today(15, 0), Status: models.AppointmentScheduled, TotalPrice: 100.00, CreatedAt: now, UpdatedAt: now},
		{ID: "4", CustomerID: "4", StylistID: "4", ServiceIDs: []string{"8"}, StartTime: today(14, 0), EndTime: today(15, 0), Status: models.AppointmentScheduled, TotalPrice: 80.00, CreatedAt: now, UpdatedAt: now},
	}

	transactions := []models.Transaction{
		{
			ID: "1", CustomerID: "1", AppointmentID: "1",
			Items: []models.TransactionItem{
				{ID: "1", Type: models.ItemTypeService, ItemID: "1", ItemName: "Haircut & Style", Quantity: 1, UnitPrice: 45.00, TotalPrice: 45.00},
			},
			Subtotal: 45.00, Tax: 3.60, Discount: 0.00, Total: 48.60,
			PaymentMethod: models.PaymentMethodCard, PaymentStatus: models.PaymentCompleted,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "2",
			Items: []models.TransactionItem{
				{ID: "1", Type: models.ItemTypeProduct, ItemID: "1", ItemName: "Shampoo", Quantity: 2, UnitPrice: 24.99, TotalPrice: 49.98},
				{ID: "2", Type: models.ItemTypeProduct, ItemID: "4", ItemName: "Nail Polish", Quantity: 3, UnitPrice: 14.99, TotalPrice: 44.97},
			},
			Subtotal: 94.95, Tax: 7.60, Discount: 0.00, Total: 102.55,
			PaymentMethod: models.PaymentMethodCash, PaymentStatus: models.PaymentCompleted,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	return New(customers, stylists, services, products, categories, appointments, transactions, giftCards)
}
