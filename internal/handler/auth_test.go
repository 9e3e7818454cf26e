package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nexuscrm/internal/config"
	"nexuscrm/internal/dto"
	"nexuscrm/internal/remote"
	"nexuscrm/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	payload  *remote.SessionPayload
	err      error
	signOuts int
}

func (a *stubAuth) SignIn(context.Context, string, string) (*remote.SessionPayload, error) {
	return a.payload, a.err
}

func (a *stubAuth) CurrentSession(context.Context) (*remote.SessionPayload, error) {
	return a.payload, a.err
}

func (a *stubAuth) SignOut(context.Context, string) error {
	a.signOuts++
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		DemoEmail:        "demo@nexus.com",
		DemoPasswordHash: string(hash),
	}
}

func authRouter(auth remote.Auth, sessions *session.Store, cfg *config.Config) *gin.Engine {
	r := gin.New()
	h := NewAuthHandler(auth, sessions, cfg)
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/session", h.Session)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRemoteSuccess(t *testing.T) {
	payload := &remote.SessionPayload{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 3600}
	payload.User.ID = "u1"
	payload.User.Email = "carlos@nexus.com"

	auth := &stubAuth{payload: payload}
	sessions := session.New(auth, time.Second)
	r := authRouter(auth, sessions, testConfig(t))

	w := postJSON(r, "/v1/auth/login", gin.H{"email": "carlos@nexus.com", "password": "secreto"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Session)
	assert.Equal(t, "carlos@nexus.com", resp.Session.User.Email)
	assert.False(t, resp.Demo)

	// The store now holds the session
	require.NotNil(t, sessions.Get())
	assert.Equal(t, "tok", sessions.Get().AccessToken)
}

func TestLoginDemoFallback(t *testing.T) {
	auth := &stubAuth{err: errors.New("auth caido")}
	sessions := session.New(auth, time.Second)
	r := authRouter(auth, sessions, testConfig(t))

	w := postJSON(r, "/v1/auth/login", gin.H{"email": "demo@nexus.com", "password": "demo123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Demo)
	require.NotNil(t, resp.Session)
	assert.Equal(t, "demo-token", resp.Session.AccessToken)
	assert.NotNil(t, sessions.Get())
}

func TestLoginBadCredentials(t *testing.T) {
	auth := &stubAuth{err: errors.New("invalid grant")}
	sessions := session.New(auth, time.Second)
	r := authRouter(auth, sessions, testConfig(t))

	w := postJSON(r, "/v1/auth/login", gin.H{"email": "demo@nexus.com", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Credenciales invalidas")
	assert.Nil(t, sessions.Get())
}

func TestLoginDemoDisabledWithoutHash(t *testing.T) {
	auth := &stubAuth{err: errors.New("auth caido")}
	sessions := session.New(auth, time.Second)
	cfg := &config.Config{DemoEmail: "demo@nexus.com"} // no hash configured

	r := authRouter(auth, sessions, cfg)
	w := postJSON(r, "/v1/auth/login", gin.H{"email": "demo@nexus.com", "password": "demo123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidation(t *testing.T) {
	auth := &stubAuth{}
	r := authRouter(auth, session.New(auth, time.Second), testConfig(t))

	w := postJSON(r, "/v1/auth/login", gin.H{"email": "no-es-correo", "password": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Error de validacion")
}

func TestLogoutClearsSession(t *testing.T) {
	auth := &stubAuth{}
	sessions := session.New(auth, time.Second)
	sessions.SignInDemo("demo@nexus.com")
	r := authRouter(auth, sessions, testConfig(t))

	w := postJSON(r, "/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, sessions.Get())
	assert.Equal(t, 1, auth.signOuts)
}

func TestSessionEndpointReportsLoading(t *testing.T) {
	auth := &stubAuth{}
	sessions := session.New(auth, time.Second) // Start never called: still loading
	r := authRouter(auth, sessions, testConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Loading)
	assert.Nil(t, resp.Session)
}
