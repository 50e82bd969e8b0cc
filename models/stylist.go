package models

import "time"

type Stylist struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Specialties    []string  `json:"specialties"`
	CommissionRate float64   `json:"commissionRate"`
	IsAvailable    bool      `json:"isAvailable"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s Stylist) FullName() string {
	return s.FirstName + " " + s.LastName
}
