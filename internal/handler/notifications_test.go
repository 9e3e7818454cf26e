package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuscrm/internal/dto"
	"nexuscrm/internal/model"
	"nexuscrm/internal/notify"
)

func notificationsRouter() (*gin.Engine, *notify.Store) {
	notifs := notify.New(time.Second, time.Minute)
	h := NewNotificationsHandler(notifs)

	r := gin.New()
	r.GET("/v1/notifications", h.List)
	r.PATCH("/v1/notifications/:id/read", h.MarkRead)
	r.DELETE("/v1/notifications", h.ClearAll)
	r.GET("/v1/notifications/toasts", h.Toasts)
	r.DELETE("/v1/notifications/toasts/:id", h.DismissToast)
	return r, notifs
}

func TestNotificationsListWithUnreadCount(t *testing.T) {
	r, notifs := notificationsRouter()
	notifs.Add("Propiedad Creada", "Villa Sol", model.NotifySuccess)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.NotificationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, 2, resp.UnreadCount)
	assert.Equal(t, "Propiedad Creada", resp.Notifications[0].Title)
}

func TestNotificationsMarkReadReturnsCount(t *testing.T) {
	r, _ := notificationsRouter()

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/welcome/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":0}`, w.Body.String())
}

func TestNotificationsClearAll(t *testing.T) {
	r, notifs := notificationsRouter()
	notifs.Add("a", "a", model.NotifyInfo)

	req := httptest.NewRequest(http.MethodDelete, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, notifs.List())
	assert.Equal(t, 0, notifs.UnreadCount())
}

func TestNotificationsToastLifecycleOverHTTP(t *testing.T) {
	r, notifs := notificationsRouter()
	id := notifs.Add("Actividad Registrada", "Visita", model.NotifySuccess)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications/toasts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	req = httptest.NewRequest(http.MethodDelete, "/v1/notifications/toasts/"+id, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, notifs.ActiveToasts())
}
