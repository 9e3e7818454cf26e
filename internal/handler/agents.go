package handler

import (
	"errors"
	"net/http"

	"nexuscrm/internal/apierror"
	"nexuscrm/internal/controller"
	"nexuscrm/internal/dto"

	"github.com/gin-gonic/gin"
)

type AgentsHandler struct {
	agents *controller.AgentList
}

func NewAgentsHandler(agents *controller.AgentList) *AgentsHandler {
	return &AgentsHandler{agents: agents}
}

// List loads the team roster. Query param q filters by name or email.
func (h *AgentsHandler) List(c *gin.Context) {
	h.agents.SetSearch(c.Query("q"))
	if err := h.agents.Load(c.Request.Context()); err != nil {
		c.Status(http.StatusRequestTimeout)
		return
	}
	members := h.agents.Agents()
	c.JSON(http.StatusOK, dto.AgentListResponse{Agents: members, Total: len(members)})
}

// Create adds a team member optimistically.
func (h *AgentsHandler) Create(c *gin.Context) {
	var req dto.AddMemberRequest
	if !bindAndValidate(c, &req) {
		return
	}
	written := h.agents.AddMember(c.Request.Context(), controller.AddMemberInput{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	})
	c.JSON(http.StatusCreated, written)
}

// Delete removes a member from the in-memory roster. The removal is local
// only and requires confirm=true — the API stand-in for the blocking yes/no
// prompt.
func (h *AgentsHandler) Delete(c *gin.Context) {
	confirm := c.Query("confirm") == "true"
	removed, err := h.agents.RemoveMember(c.Param("id"), confirm)
	if err != nil {
		if errors.Is(err, controller.ErrConfirmRequired) {
			c.JSON(http.StatusBadRequest, apierror.New("Confirmacion requerida: confirm=true"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar miembro"))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, apierror.New("Miembro no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}
