package dto

import "nexuscrm/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SessionResponse struct {
	Session *model.Session `json:"session"`
	Loading bool           `json:"loading"`
	// Demo marks a synthesized offline session (no auth backend confirmed it).
	Demo bool `json:"demo,omitempty"`
}
