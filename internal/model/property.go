package model

import (
	"github.com/shopspring/decimal"
)

// PropertyStatus is the sale pipeline stage of a property.
// Values cycle in fixed order: captado → visitado → en_tramite → vendido → financiado.
type PropertyStatus string

const (
	StatusCaptado    PropertyStatus = "captado"
	StatusVisitado   PropertyStatus = "visitado"
	StatusEnTramite  PropertyStatus = "en_tramite"
	StatusVendido    PropertyStatus = "vendido"
	StatusFinanciado PropertyStatus = "financiado"
)

// statusOrder is the canonical pipeline order. Advancing from the last stage
// wraps back to the first.
var statusOrder = [5]PropertyStatus{
	StatusCaptado,
	StatusVisitado,
	StatusEnTramite,
	StatusVendido,
	StatusFinanciado,
}

// Next returns the successor stage in the pipeline cycle. There is no
// transition guard: any stage advances, including vendido → financiado with no
// transaction on record. An unknown value resolves to captado, matching
// order[(indexOf+1) mod 5] with indexOf = -1.
func (s PropertyStatus) Next() PropertyStatus {
	for i, st := range statusOrder {
		if st == s {
			return statusOrder[(i+1)%len(statusOrder)]
		}
	}
	return statusOrder[0]
}

// Valid reports whether s is one of the five pipeline stages.
func (s PropertyStatus) Valid() bool {
	for _, st := range statusOrder {
		if st == s {
			return true
		}
	}
	return false
}

// StatusOrder returns the pipeline stages in canonical order.
func StatusOrder() []PropertyStatus {
	out := make([]PropertyStatus, len(statusOrder))
	copy(out, statusOrder[:])
	return out
}

// Property is a listing in the agency's inventory. AgentID is a weak reference
// to a Profile — no ownership, no cascade. A property owns zero-or-one live
// Transaction and zero-or-more PropertyActivity entries.
type Property struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Address   string          `json:"address"`
	Price     decimal.Decimal `json:"price"`
	Status    PropertyStatus  `json:"status"`
	AgentID   string          `json:"agent_id"`
	OwnerName string          `json:"owner_name"`
	CreatedAt string          `json:"created_at"`
	ImageURL  *string         `json:"image_url,omitempty"`

	// Agent is the joined profile when the roster fetch succeeds; nil otherwise.
	Agent *Profile `json:"agent,omitempty"`
}
