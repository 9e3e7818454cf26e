// Package session holds the authenticated identity for the lifetime of the
// process. The store is constructed once at startup and passed down the call
// graph — no package-level state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"nexuscrm/internal/model"
	"nexuscrm/internal/remote"
)

// Store is the process-wide session holder. Initialization races the remote
// session check against a fixed deadline so the UI never blocks on a hanging
// auth service; any failure fails open to the signed-out state.
type Store struct {
	mu       sync.RWMutex
	session  *model.Session
	loading  bool
	nextSub  int
	subs     map[int]func(*model.Session)
	auth     remote.Auth
	deadline time.Duration
}

// New creates a Store in the loading state. Call Start to run the
// initialization race.
func New(auth remote.Auth, initDeadline time.Duration) *Store {
	if initDeadline <= 0 {
		initDeadline = 3 * time.Second
	}
	return &Store{
		loading:  true,
		subs:     make(map[int]func(*model.Session)),
		auth:     auth,
		deadline: initDeadline,
	}
}

// Start checks the remote auth service for an active session, bounded by the
// configured deadline. A check that neither resolves nor rejects in time
// leaves loading=false with no session. Errors are logged and treated
// identically to "no session" — initialization is never fatal.
func (s *Store) Start(ctx context.Context) {
	type result struct {
		payload *remote.SessionPayload
		err     error
	}
	ch := make(chan result, 1)

	checkCtx, cancel := context.WithTimeout(ctx, s.deadline)
	go func() {
		defer cancel()
		p, err := s.auth.CurrentSession(checkCtx)
		ch <- result{p, err}
	}()

	select {
	case r := <-ch:
		switch {
		case r.err != nil:
			log.Warn().Err(r.err).Msg("session init failed, continuing signed out")
			s.finish(nil)
		case r.payload == nil:
			s.finish(nil)
		default:
			s.finish(FromPayload(r.payload))
		}
	case <-checkCtx.Done():
		log.Warn().Msg("session init timed out, continuing signed out")
		s.finish(nil)
	}
}

func (s *Store) finish(sess *model.Session) {
	s.mu.Lock()
	s.loading = false
	s.session = sess
	subs := s.snapshot()
	s.mu.Unlock()
	notify(subs, sess)
}

// Get returns the current session or nil.
func (s *Store) Get() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Loading reports whether the initialization race is still running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Set overwrites the session unconditionally — changes pushed by the remote
// auth channel are last-write-wins, no merge.
func (s *Store) Set(sess *model.Session) {
	s.mu.Lock()
	s.loading = false
	s.session = sess
	subs := s.snapshot()
	s.mu.Unlock()
	notify(subs, sess)
}

// OnChange registers a handler invoked on every session change. The returned
// function unsubscribes it.
func (s *Store) OnChange(fn func(*model.Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SignOut clears local state unconditionally. The remote invalidation is
// attempted but its outcome does not gate the local transition.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.RLock()
	current := s.session
	s.mu.RUnlock()

	if current != nil {
		if err := s.auth.SignOut(ctx, current.AccessToken); err != nil {
			log.Warn().Err(err).Msg("remote sign-out failed, clearing local session anyway")
		}
	}
	s.Set(nil)
}

// SignInDemo installs a synthesized offline session so the dashboard is
// usable with no auth backend configured.
func (s *Store) SignInDemo(email string) *model.Session {
	name := "Usuario Demo"
	sess := &model.Session{
		AccessToken:  "demo-token",
		RefreshToken: "demo-refresh",
		TokenType:    "bearer",
		ExpiresIn:    3600,
		User: model.SessionUser{
			ID:       "demo-user",
			Email:    email,
			FullName: &name,
		},
	}
	s.Set(sess)
	return sess
}

func (s *Store) snapshot() []func(*model.Session) {
	out := make([]func(*model.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(*model.Session), sess *model.Session) {
	for _, fn := range subs {
		fn(sess)
	}
}

// FromPayload converts the wire session into the domain session, filling
// identity gaps from the access token's claims when the user endpoint
// returned a partial record. The token is decoded, not verified — signature
// checks belong to the auth service.
func FromPayload(p *remote.SessionPayload) *model.Session {
	sess := &model.Session{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    p.ExpiresIn,
		User: model.SessionUser{
			ID:    p.User.ID,
			Email: p.User.Email,
		},
	}
	if p.User.Metadata.FullName != "" {
		n := p.User.Metadata.FullName
		sess.User.FullName = &n
	}

	if p.AccessToken != "" && (sess.User.Email == "" || sess.ExpiresIn == 0) {
		if claims := decodeClaims(p.AccessToken); claims != nil {
			if sess.User.Email == "" {
				if email, _ := claims["email"].(string); email != "" {
					sess.User.Email = email
				}
			}
			if sess.User.ID == "" {
				if sub, _ := claims["sub"].(string); sub != "" {
					sess.User.ID = sub
				}
			}
			if sess.ExpiresIn == 0 {
				if exp, ok := claims["exp"].(float64); ok {
					remaining := int(time.Until(time.Unix(int64(exp), 0)).Seconds())
					if remaining > 0 {
						sess.ExpiresIn = remaining
					}
				}
			}
		}
	}
	return sess
}

func decodeClaims(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
