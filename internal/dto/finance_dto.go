package dto

import (
	"nexuscrm/internal/controller"
	"nexuscrm/internal/fixture"
	"nexuscrm/internal/model"
)

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FinanceResponse struct {
	Summary          controller.Summary      `json:"summary"`
	Recent           []model.Transaction     `json:"recent"`
	MonthlySeries    []fixture.MonthlyPoint  `json:"monthly_series"`
	ExpenseBreakdown []fixture.CategorySlice `json:"expense_breakdown"`
}

type NotificationListResponse struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unread_count"`
}
