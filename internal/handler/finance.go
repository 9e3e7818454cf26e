package handler

import (
	"net/http"

	"nexuscrm/internal/controller"
	"nexuscrm/internal/dto"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	finance *controller.Finance
}

func NewFinanceHandler(finance *controller.Finance) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// Dashboard loads the finance screen and recomputes the reductions. Empty
// collections surface the fixed illustrative figures, never zeros.
func (h *FinanceHandler) Dashboard(c *gin.Context) {
	if err := h.finance.Load(c.Request.Context()); err != nil {
		c.Status(http.StatusRequestTimeout)
		return
	}
	c.JSON(http.StatusOK, dto.FinanceResponse{
		Summary:          h.finance.Summarize(),
		Recent:           h.finance.Recent(5),
		MonthlySeries:    h.finance.MonthlySeries(),
		ExpenseBreakdown: h.finance.ExpenseBreakdown(),
	})
}
