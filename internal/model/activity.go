package model

// PropertyActivity is one entry in a property's append-only audit log.
// Entries are never updated or deleted. Tipo is a free-form tag; the UI offers
// "visita" | "llamada" | "oferta" | "otro".
type PropertyActivity struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"property_id"`
	PerformedBy *string `json:"performed_by,omitempty"`
	Type        string  `json:"type"`
	Notes       string  `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

const (
	ActivityVisita  = "visita"
	ActivityLlamada = "llamada"
	ActivityOferta  = "oferta"
	ActivityOtro    = "otro"
)
