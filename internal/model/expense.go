package model

import (
	"github.com/shopspring/decimal"
)

// Expense is an agency cost entry. Read-only in the current scope.
// Categoria: "marketing" | "operativo" | "personal" | "otros"
type Expense struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category"`
	LinkedPropertyID *string         `json:"linked_property_id,omitempty"`
	CreatedAt        string          `json:"created_at"`
}
