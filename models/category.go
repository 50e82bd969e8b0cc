package models

// ItemType distinguishes services from retail products wherever the two
// share a listing: categories, transaction items, and cart lines.
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
)

type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	IsActive bool     `json:"isActive"`
}
