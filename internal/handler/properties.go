package handler

import (
	"net/http"

	"nexuscrm/internal/apierror"
	"nexuscrm/internal/controller"
	"nexuscrm/internal/dto"

	"github.com/gin-gonic/gin"
)

type PropertiesHandler struct {
	list   *controller.PropertyList
	detail *controller.PropertyDetail
}

func NewPropertiesHandler(list *controller.PropertyList, detail *controller.PropertyDetail) *PropertiesHandler {
	return &PropertiesHandler{list: list, detail: detail}
}

// List loads the inventory grid. Query params: status (pipeline stage or
// "all"), q (free text). The read never errors toward the client — fixture
// fallback keeps the screen populated.
func (h *PropertiesHandler) List(c *gin.Context) {
	h.list.SetFilter(c.DefaultQuery("status", "all"))
	h.list.SetSearch(c.Query("q"))

	if err := h.list.Load(c.Request.Context()); err != nil {
		// Only a cancelled request lands here; the client is gone.
		c.Status(http.StatusRequestTimeout)
		return
	}
	props := h.list.Properties()
	c.JSON(http.StatusOK, dto.PropertyListResponse{Properties: props, Total: len(props)})
}

// Create registers a listing optimistically; the response origin field tells
// confirmed-persisted from local-only.
func (h *PropertiesHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	written := h.list.Create(c.Request.Context(), controller.CreatePropertyInput{
		Title:     req.Title,
		Address:   req.Address,
		Price:     req.Price,
		AgentID:   req.AgentID,
		OwnerName: req.OwnerName,
		ImageURL:  req.ImageURL,
	})
	c.JSON(http.StatusCreated, written)
}

// Get loads the detail screen: property, transaction, activity log. An
// unknown id yields an empty body, not an error.
func (h *PropertiesHandler) Get(c *gin.Context) {
	if err := h.detail.Load(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(http.StatusRequestTimeout)
		return
	}
	c.JSON(http.StatusOK, dto.PropertyDetailResponse{
		Property:    h.detail.Property(),
		Transaction: h.detail.Transaction(),
		Activities:  h.detail.Activities(),
	})
}

// AdvanceStatus moves a listing one pipeline step.
func (h *PropertiesHandler) AdvanceStatus(c *gin.Context) {
	written, ok := h.list.AdvanceStatus(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Propiedad no encontrada"))
		return
	}
	c.JSON(http.StatusOK, written)
}

// AddActivity appends to the property's audit log.
func (h *PropertiesHandler) AddActivity(c *gin.Context) {
	var req dto.AddActivityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	written := h.detail.AddActivity(c.Request.Context(), c.Param("id"), controller.AddActivityInput{
		Type:        req.Type,
		Notes:       req.Notes,
		PerformedBy: req.PerformedBy,
	})
	c.JSON(http.StatusCreated, written)
}
