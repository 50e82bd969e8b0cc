package models

import "time"

const (
	AppointmentScheduled  = "scheduled"
	AppointmentInProgress = "in-progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
	AppointmentNoShow     = "no-show"
)

type Appointment struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	StylistID  string    `json:"stylistId"`
	ServiceIDs []string  `json:"serviceIds"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
