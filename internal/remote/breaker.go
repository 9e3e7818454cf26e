package remote

import (
	"sync"
	"time"
)

// Breaker guards the hosted store with the classic three-state circuit:
// closed (requests flow) → open (fast-fail) → half-open (one probe allowed).
// It never retries on the caller's behalf — each user action stays a single
// attempt, an open circuit just resolves that attempt immediately so the
// fixture fallback kicks in without waiting for a network timeout.
type Breaker struct {
	mu          sync.Mutex
	failures    int
	successes   int
	open        bool
	probing     bool
	lastFailure time.Time

	failureThreshold int
	successThreshold int
	openTimeout      time.Duration
}

// NewBreaker creates a closed breaker with the given trip threshold.
func NewBreaker(failureThreshold int, openTimeout time.Duration) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}
	return &Breaker{
		failureThreshold: failureThreshold,
		successThreshold: 2,
		openTimeout:      openTimeout,
	}
}

// Allow reports whether the next call may proceed. In the open state a single
// probe is let through once the open timeout has elapsed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return true
	}
	if time.Since(b.lastFailure) >= b.openTimeout && !b.probing {
		b.probing = true
		return true
	}
	return false
}

// Record feeds the outcome of a completed call back into the breaker.
func (b *Breaker) Record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failures++
		b.successes = 0
		b.lastFailure = time.Now()
		if b.probing {
			// Probe failed — stay open, wait another timeout.
			b.probing = false
			return
		}
		if b.failures >= b.failureThreshold {
			b.open = true
		}
		return
	}

	if b.probing {
		b.successes++
		if b.successes >= b.successThreshold {
			b.open = false
			b.probing = false
			b.failures = 0
			b.successes = 0
		} else {
			// Allow the next probe immediately.
			b.lastFailure = time.Time{}
			b.probing = false
		}
		return
	}
	b.failures = 0
}

// State returns a human-readable state name for health reporting.
func (b *Breaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case !b.open:
		return "closed"
	case b.probing:
		return "half-open"
	default:
		return "open"
	}
}
