package handler

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"nexuscrm/internal/apierror"
	"nexuscrm/internal/config"
	"nexuscrm/internal/dto"
	"nexuscrm/internal/remote"
	"nexuscrm/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	auth     remote.Auth
	sessions *session.Store
	cfg      *config.Config
}

func NewAuthHandler(auth remote.Auth, sessions *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cfg: cfg}
}

// Login signs in against the remote auth service. When the remote service is
// unreachable or unconfigured, the configured demo credential still opens a
// local session so the dashboard stays demonstrable.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	payload, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err == nil {
		sess := session.FromPayload(payload)
		h.sessions.Set(sess)
		c.JSON(http.StatusOK, dto.SessionResponse{Session: sess})
		return
	}

	if h.demoCredentialMatches(req.Email, req.Password) {
		log.Warn().Err(err).Msg("remote sign-in unavailable, opening demo session")
		sess := h.sessions.SignInDemo(req.Email)
		c.JSON(http.StatusOK, dto.SessionResponse{Session: sess, Demo: true})
		return
	}

	c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
}

func (h *AuthHandler) demoCredentialMatches(email, password string) bool {
	if h.cfg.DemoPasswordHash == "" || email != h.cfg.DemoEmail {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.cfg.DemoPasswordHash), []byte(password)) == nil
}

// Logout clears the session. Local state is cleared even when the remote
// invalidation does not respond in time.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.SignOut(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Session reports the current session store state.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SessionResponse{
		Session: h.sessions.Get(),
		Loading: h.sessions.Loading(),
	})
}
