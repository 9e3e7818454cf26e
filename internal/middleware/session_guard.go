package middleware

import (
	"net/http"

	"nexuscrm/internal/guard"
	"nexuscrm/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireSession gates protected routes on session-store state, applying the
// pure guard decision: a pending session check renders a loading placeholder,
// a missing session redirects to login preserving the requested location.
func RequireSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := guard.Decide(sessions.Get(), sessions.Loading(), c.Request.URL.Path)
		switch d.Outcome {
		case guard.Loading:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"detail":  "Verificando sesión",
				"loading": true,
			})
		case guard.RedirectToLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail":      "Autenticacion requerida",
				"redirect_to": "/login",
				"from":        d.From,
			})
		default:
			c.Next()
		}
	}
}
