// Package remote implements the request/response contract with the hosted
// database service: named-collection reads with equality/ordering filters,
// single-record reads by primary key, inserts returning the server
// representation, field updates by primary key, and the auth sub-contract.
// Every call is attempted exactly once — no retry, no backoff. Failure
// handling belongs to the callers, which degrade to fixtures.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Filter is an equality condition on a collection column.
type Filter struct {
	Column string
	Value  string
}

// Query shapes a collection read.
type Query struct {
	// Select is the column projection; "*" when empty. Joined relations use
	// the embed syntax, e.g. "*, agent:profiles(*)".
	Select     string
	Filters    []Filter
	OrderBy    string
	Descending bool
}

// Store is the table-API surface consumed by the controllers. Select returns
// the raw ordered row set; callers decode into their own types.
type Store interface {
	Select(ctx context.Context, collection string, q Query) ([]json.RawMessage, error)
	GetByKey(ctx context.Context, collection, id string) (json.RawMessage, error)
	Insert(ctx context.Context, collection string, record any) (json.RawMessage, error)
	UpdateByKey(ctx context.Context, collection, id string, fields any) (json.RawMessage, error)
}

// Auth is the authentication sub-contract.
type Auth interface {
	SignIn(ctx context.Context, email, password string) (*SessionPayload, error)
	CurrentSession(ctx context.Context) (*SessionPayload, error)
	SignOut(ctx context.Context, accessToken string) error
}

// SessionPayload is the session shape returned by the auth endpoints.
type SessionPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Metadata struct {
			FullName string `json:"full_name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// Client talks to a Supabase-style REST endpoint (PostgREST tables under
// /rest/v1, GoTrue auth under /auth/v1).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *Breaker
}

// NewClient builds a client for the given endpoint and access key.
func NewClient(baseURL, apiKey string, timeout time.Duration, breaker *Breaker) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}
}

// BreakerState exposes the circuit state for health reporting.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "closed"
	}
	return c.breaker.State()
}

func (c *Client) Select(ctx context.Context, collection string, q Query) ([]json.RawMessage, error) {
	sel := q.Select
	if sel == "" {
		sel = "*"
	}
	params := url.Values{}
	params.Set("select", sel)
	for _, f := range q.Filters {
		params.Set(f.Column, "eq."+f.Value)
	}
	if q.OrderBy != "" {
		dir := "asc"
		if q.Descending {
			dir = "desc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}

	body, err := c.do(ctx, http.MethodGet, "/rest/v1/"+collection+"?"+params.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("remote: decode %s rows: %w", collection, err)
	}
	return rows, nil
}

func (c *Client) GetByKey(ctx context.Context, collection, id string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("id", "eq."+id)
	body, err := c.do(ctx, http.MethodGet, "/rest/v1/"+collection+"?"+params.Encode(), nil,
		map[string]string{"Accept": "application/vnd.pgrst.object+json"})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) Insert(ctx context.Context, collection string, record any) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodPost, "/rest/v1/"+collection, record,
		map[string]string{"Prefer": "return=representation", "Accept": "application/vnd.pgrst.object+json"})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) UpdateByKey(ctx context.Context, collection, id string, fields any) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("id", "eq."+id)
	body, err := c.do(ctx, http.MethodPatch, "/rest/v1/"+collection+"?"+params.Encode(), fields,
		map[string]string{"Prefer": "return=representation", "Accept": "application/vnd.pgrst.object+json"})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// SignIn exchanges a credential pair for a session (password grant).
func (c *Client) SignIn(ctx context.Context, email, password string) (*SessionPayload, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", payload, nil)
	if err != nil {
		return nil, err
	}
	var s SessionPayload
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("remote: decode session: %w", err)
	}
	return &s, nil
}

// CurrentSession asks the auth service for the active session. Returns
// (nil, nil) when there is none — the caller treats absence and failure
// identically, but they are reported apart.
func (c *Client) CurrentSession(ctx context.Context) (*SessionPayload, error) {
	body, err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, nil)
	if err != nil {
		if err == ErrUnauthorized || err == ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var s SessionPayload
	if err := json.Unmarshal(body, &s.User); err != nil {
		return nil, fmt.Errorf("remote: decode user: %w", err)
	}
	if s.User.ID == "" {
		return nil, nil
	}
	return &s, nil
}

// SignOut invalidates the session remotely. Local state is cleared by the
// session store regardless of the outcome here.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil,
		map[string]string{"Authorization": "Bearer " + accessToken})
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any, headers map[string]string) ([]byte, error) {
	if c.breaker != nil && !c.breaker.Allow() {
		return nil, ErrCircuitOpen
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("remote: marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("remote: create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// Default to the api key unless the caller supplied its own bearer token.
	if req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if c.breaker != nil && !errors.Is(err, context.Canceled) {
		// An abandoned request says nothing about the store's health.
		c.breaker.Record(err)
	}
	if err != nil {
		return nil, fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remote: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotAcceptable || resp.StatusCode == http.StatusNotFound:
		// PostgREST answers 406 for a single-object request with zero rows.
		return nil, ErrNoRows
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("remote: %s %s: status %d", method, path, resp.StatusCode)
	}
	return body, nil
}

// Decode unmarshals a raw row into T.
func Decode[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

// DecodeRows unmarshals a row set into a []T, skipping nothing: a single bad
// row fails the whole read so the caller falls back to fixtures.
func DecodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		v, err := Decode[T](r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
