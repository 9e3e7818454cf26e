package router

import (
	"time"

	"nexuscrm/internal/config"
	"nexuscrm/internal/controller"
	"nexuscrm/internal/handler"
	"nexuscrm/internal/middleware"
	"nexuscrm/internal/notify"
	"nexuscrm/internal/remote"
	"nexuscrm/internal/session"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Controller ← remote.Client / stores
func New(cfg *config.Config, client *remote.Client, sessions *session.Store, notifs *notify.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Controllers ──────────────────────────────────────────────────────────
	propertyList := controller.NewPropertyList(client, notifs)
	propertyDetail := controller.NewPropertyDetail(client, notifs)
	agentList := controller.NewAgentList(client, notifs)
	finance := controller.NewFinance(client)
	admin := controller.NewAdmin(notifs)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(client, sessions, cfg)
	propertiesH := handler.NewPropertiesHandler(propertyList, propertyDetail)
	agentsH := handler.NewAgentsHandler(agentList)
	financeH := handler.NewFinanceHandler(finance)
	notificationsH := handler.NewNotificationsHandler(notifs)
	adminH := handler.NewAdminHandler(admin)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(cfg, client))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/session", authH.Session)
	}

	// Protected routes — gated on the session store, not on local token
	// verification (tokens are minted and verified by the remote auth service)
	guardMW := middleware.RequireSession(sessions)
	v1 := r.Group("/v1", guardMW)
	{
		props := v1.Group("/properties")
		{
			props.GET("", propertiesH.List)
			props.POST("", propertiesH.Create)
			props.GET("/:id", propertiesH.Get)
			props.POST("/:id/advance-status", propertiesH.AdvanceStatus)
			props.POST("/:id/activities", propertiesH.AddActivity)
		}

		agents := v1.Group("/agents")
		{
			agents.GET("", agentsH.List)
			agents.POST("", agentsH.Create)
			agents.DELETE("/:id", agentsH.Delete)
		}

		v1.GET("/finance", financeH.Dashboard)

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationsH.List)
			notifications.PATCH("/:id/read", notificationsH.MarkRead)
			notifications.DELETE("", notificationsH.ClearAll)
			notifications.GET("/toasts", notificationsH.Toasts)
			notifications.DELETE("/toasts/:id", notificationsH.DismissToast)
		}

		adminGroup := v1.Group("/admin")
		{
			adminGroup.GET("/status", adminH.Status)
			adminGroup.POST("/status/toggle", adminH.ToggleStatus)
			adminGroup.POST("/sections/:name", adminH.SectionAction)
		}
	}

	return r
}
