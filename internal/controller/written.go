// Package controller implements the per-screen view-state controllers. Every
// controller owns its screen's mutable state behind a mutex and follows the
// same read protocol: mark loading, issue independent remote reads in
// parallel, substitute deterministic fixtures for any read that fails, and
// clear loading unconditionally. Writes are optimistic: the local list is
// updated whether or not the remote write landed, and the result carries an
// origin tag so callers can tell confirmed-persisted from local-only.
package controller

// Origin tags where a written record ended up.
type Origin string

const (
	// OriginRemote — the store confirmed the write; the record carries the
	// server-assigned id and timestamp.
	OriginRemote Origin = "remote"
	// OriginLocal — the remote write failed and the record exists only in
	// this process, under a locally synthesized id.
	OriginLocal Origin = "local"
)

// Written is the tagged result of an optimistic write.
type Written[T any] struct {
	Record T      `json:"record"`
	Origin Origin `json:"origin"`
}
