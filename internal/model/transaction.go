package model

import (
	"github.com/shopspring/decimal"
)

// Transaction tracks the sale process of a property. At most one live
// transaction exists per property. Estado: "pendiente" | "completado" |
// "cancelado" — no cancellation flow is implemented, completado is final.
type Transaction struct {
	ID               string          `json:"id"`
	PropertyID       string          `json:"property_id"`
	BuyerName        string          `json:"buyer_name"`
	FinalPrice       decimal.Decimal `json:"final_price"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NotaryName       string          `json:"notary_name"`
	SurveyorName     string          `json:"surveyor_name"`
	SignatureDate    string          `json:"signature_date"`
	Status           string          `json:"status"`

	// Property is the joined listing when fetched with an embed; nil otherwise.
	Property *Property `json:"property,omitempty"`
}

const (
	TransactionPendiente  = "pendiente"
	TransactionCompletado = "completado"
	TransactionCancelado  = "cancelado"
)
