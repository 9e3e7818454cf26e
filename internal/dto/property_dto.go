package dto

import (
	"github.com/shopspring/decimal"

	"nexuscrm/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Required-field presence is the only validation layer, mirroring the form
// constraints of the dashboard; anything deeper belongs to the remote store.

type CreatePropertyRequest struct {
	Title     string          `json:"title"      validate:"required,min=1,max=200"`
	Address   string          `json:"address"    validate:"required,min=1,max=300"`
	Price     decimal.Decimal `json:"price"      validate:"min=0"`
	AgentID   string          `json:"agent_id"`
	OwnerName string          `json:"owner_name" validate:"required,min=1,max=150"`
	ImageURL  *string         `json:"image_url"  validate:"omitempty,url"`
}

type AddActivityRequest struct {
	Type        string  `json:"type"  validate:"required,min=1,max=50"`
	Notes       string  `json:"notes" validate:"max=2000"`
	PerformedBy *string `json:"performed_by"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PropertyListResponse struct {
	Properties []model.Property `json:"properties"`
	Total      int              `json:"total"`
}

type PropertyDetailResponse struct {
	Property    *model.Property          `json:"property"`
	Transaction *model.Transaction       `json:"transaction"`
	Activities  []model.PropertyActivity `json:"activities"`
}
