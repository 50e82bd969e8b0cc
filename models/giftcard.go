package models

import "time"

type GiftCard struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	InitialAmount float64   `json:"initialAmount"`
	Balance       float64   `json:"balance"`
	IssuedAt      time.Time `json:"issuedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	IsActive      bool      `json:"isActive"`
}
