package handler

import (
	"net/http"

	"nexuscrm/internal/dto"
	"nexuscrm/internal/notify"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	notifs *notify.Store
}

func NewNotificationsHandler(notifs *notify.Store) *NotificationsHandler {
	return &NotificationsHandler{notifs: notifs}
}

// List returns the notification center contents, most recent first, with the
// derived unread count.
func (h *NotificationsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NotificationListResponse{
		Notifications: h.notifs.List(),
		UnreadCount:   h.notifs.UnreadCount(),
	})
}

// MarkRead flags one notification as read; unknown ids are a no-op.
func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	h.notifs.MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"unread_count": h.notifs.UnreadCount()})
}

// ClearAll empties the notification center.
func (h *NotificationsHandler) ClearAll(c *gin.Context) {
	h.notifs.ClearAll()
	c.Status(http.StatusNoContent)
}

// Toasts returns the transient toast projection.
func (h *NotificationsHandler) Toasts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toasts": h.notifs.ActiveToasts()})
}

// DismissToast removes a toast ahead of its auto-expiry.
func (h *NotificationsHandler) DismissToast(c *gin.Context) {
	h.notifs.DismissToast(c.Param("id"))
	c.Status(http.StatusNoContent)
}
