// Package notify is the session-scoped notification center: an append-only,
// most-recent-first list of user-facing messages with read/unread state, plus
// a transient toast projection. Nothing here is persisted — the store resets
// on process restart.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nexuscrm/internal/model"
)

// Store holds notifications for the lifetime of the process. Constructed once
// at startup and injected wherever actions emit messages.
type Store struct {
	mu            sync.Mutex
	notifications []model.Notification

	toasts      map[string]*toast
	toastOrder  []string
	freshWindow time.Duration
	displayFor  time.Duration

	now func() time.Time
}

type toast struct {
	notification model.Notification
	timer        *time.Timer
}

// New creates a Store seeded with the welcome message. freshWindow bounds how
// old a notification may be to still surface as a toast; displayFor is the
// auto-dismiss duration.
func New(freshWindow, displayFor time.Duration) *Store {
	if freshWindow <= 0 {
		freshWindow = time.Second
	}
	if displayFor <= 0 {
		displayFor = 5 * time.Second
	}
	s := &Store{
		toasts:      make(map[string]*toast),
		freshWindow: freshWindow,
		displayFor:  displayFor,
		now:         time.Now,
	}
	s.notifications = []model.Notification{{
		ID:        "welcome",
		Title:     "Bienvenido al Sistema",
		Message:   "Nexus CRM está listo para gestionar tus activos inmobiliarios.",
		Type:      model.NotifySuccess,
		Timestamp: s.now(),
	}}
	return s
}

// Add prepends a new unread notification stamped with the current time and a
// fresh unique id, and surfaces it as a toast. Returns the generated id.
func (s *Store) Add(title, message string, typ model.NotificationType) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: s.now(),
	}
	s.notifications = append([]model.Notification{n}, s.notifications...)
	s.surfaceLocked(n)
	return n.ID
}

// MarkRead flags the notification as read. Idempotent: an absent or already
// read id is a no-op.
func (s *Store) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// ClearAll empties the list; the unread count becomes 0.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

// List returns the notifications, most recent first.
func (s *Store) List() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount is derived, not maintained: it recounts read=false entries.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// ── Toast projection ─────────────────────────────────────────────────────────
// Toasts auto-expire after the display duration independently of the
// underlying notification's read state. Each toast owns its timer handle so a
// manual dismissal cancels the pending expiry instead of leaking a callback.

// surfaceLocked promotes a notification to a toast if it is younger than the
// freshness window. Caller holds s.mu.
func (s *Store) surfaceLocked(n model.Notification) {
	if s.now().Sub(n.Timestamp) >= s.freshWindow {
		return
	}
	if _, exists := s.toasts[n.ID]; exists {
		return
	}
	t := &toast{notification: n}
	t.timer = time.AfterFunc(s.displayFor, func() { s.DismissToast(n.ID) })
	s.toasts[n.ID] = t
	s.toastOrder = append(s.toastOrder, n.ID)
}

// ActiveToasts returns the currently visible toasts, oldest first.
func (s *Store) ActiveToasts() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, 0, len(s.toastOrder))
	for _, id := range s.toastOrder {
		if t, ok := s.toasts[id]; ok {
			out = append(out, t.notification)
		}
	}
	return out
}

// DismissToast removes a toast and cancels its expiry timer. Safe to call
// from the timer itself or from a manual dismissal; double dismissal is a
// no-op.
func (s *Store) DismissToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.toasts[id]
	if !ok {
		return
	}
	t.timer.Stop()
	delete(s.toasts, id)
	for i, tid := range s.toastOrder {
		if tid == id {
			s.toastOrder = append(s.toastOrder[:i], s.toastOrder[i+1:]...)
			break
		}
	}
}

// Close cancels all pending toast timers. Called at process shutdown.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.toasts {
		t.timer.Stop()
		delete(s.toasts, id)
	}
	s.toastOrder = nil
}
