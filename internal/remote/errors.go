package remote

import "errors"

var (
	// ErrNoRows means the key query matched nothing. Callers must distinguish
	// this from a query error: an unknown id is not a remote failure.
	ErrNoRows = errors.New("remote: no rows")

	// ErrCircuitOpen means the breaker is fast-failing calls to the store.
	ErrCircuitOpen = errors.New("remote: circuit open")

	// ErrUnauthorized is returned by auth calls with bad credentials.
	ErrUnauthorized = errors.New("remote: unauthorized")
)
