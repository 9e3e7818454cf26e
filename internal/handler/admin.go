package handler

import (
	"net/http"

	"nexuscrm/internal/controller"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin *controller.Admin
}

func NewAdminHandler(admin *controller.Admin) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Status reports platform availability.
func (h *AdminHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"online": h.admin.Online()})
}

// ToggleStatus flips maintenance mode.
func (h *AdminHandler) ToggleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"online": h.admin.ToggleStatus()})
}

// SectionAction acknowledges a settings section with no panel yet.
func (h *AdminHandler) SectionAction(c *gin.Context) {
	h.admin.SectionAction(c.Param("name"))
	c.Status(http.StatusAccepted)
}
