package models

import "time"

type Customer struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	LoyaltyPoints int        `json:"loyaltyPoints"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// FullName is the display name used by search and appointment views.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
