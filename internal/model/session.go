package model

import "time"

// SessionUser is the identity attached to an authenticated session.
type SessionUser struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}

// Session is the authenticated state issued by the remote auth service.
// Tokens are minted and verified remotely; the client only inspects expiry.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	User         SessionUser `json:"user"`
}

// ExpiresAt derives the wall-clock expiry from ExpiresIn relative to now.
// A zero ExpiresIn means the expiry is unknown and the session is kept.
func (s *Session) ExpiresAt(now time.Time) time.Time {
	if s.ExpiresIn <= 0 {
		return time.Time{}
	}
	return now.Add(time.Duration(s.ExpiresIn) * time.Second)
}
