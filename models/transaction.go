package models

import "time"

const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodGiftCard = "gift-card"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Transaction struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customerId,omitempty"`
	AppointmentID string            `json:"appointmentId,omitempty"`
	Items         []TransactionItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Discount      float64           `json:"discount"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentStatus string            `json:"paymentStatus"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// TransactionItem records one sold service or product. TotalPrice is stored
// as authored, it is not recomputed from Quantity and UnitPrice.
type TransactionItem struct {
	ID         string   `json:"id"`
	Type       ItemType `json:"type"`
	ItemID     string   `json:"itemId"`
	ItemName   string   `json:"itemName"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
}
