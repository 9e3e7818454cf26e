// Package guard gates navigation on session state. Decide is a pure function
// of (session, loading, target) — side effects belong to the caller.
package guard

import "nexuscrm/internal/model"

// Outcome enumerates what the caller should render.
type Outcome int

const (
	// Allow — render the requested target.
	Allow Outcome = iota
	// Loading — render a loading placeholder; the session check is pending.
	Loading
	// RedirectToLogin — send the user to the login screen, preserving the
	// originally requested location for the post-login return.
	RedirectToLogin
)

// Decision is the guard verdict for one navigation intent.
type Decision struct {
	Outcome Outcome
	// From is the originally requested location, set on RedirectToLogin.
	From string
}

// Decide resolves a navigation intent against the session store state.
func Decide(session *model.Session, loading bool, target string) Decision {
	if loading {
		return Decision{Outcome: Loading}
	}
	if session == nil {
		return Decision{Outcome: RedirectToLogin, From: target}
	}
	return Decision{Outcome: Allow}
}
