package dto

import "nexuscrm/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddMemberRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Email    string `json:"email"     validate:"required,email"`
	Role     string `json:"role"      validate:"required,oneof=admin editor agent"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AgentListResponse struct {
	Agents []model.Profile `json:"agents"`
	Total  int             `json:"total"`
}
