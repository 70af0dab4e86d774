package dashboard

import "github.com/thenoetrevino/tablero/internal/models"

// Store owns the current dashboard snapshot for one session.
// It is created by the caller and passed down explicitly; there is no
// package-level instance. Store is not safe for concurrent use: the TUI
// applies one message at a time.
type Store struct {
	current     models.Dashboard
	revision    uint64
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(models.Dashboard)
}

// NewStore creates a store holding the initial dashboard
func NewStore(initial models.Dashboard) *Store {
	return &Store{current: initial}
}

// Snapshot returns the current dashboard value
func (s *Store) Snapshot() models.Dashboard {
	return s.current
}

// Revision counts the snapshots installed since the store was created
func (s *Store) Revision() uint64 {
	return s.revision
}

// Replace installs fn(current) as the new snapshot and notifies subscribers.
// When fn hands back its input unchanged (a no-op operation) nothing is
// installed and changed is false.
func (s *Store) Replace(fn func(models.Dashboard) models.Dashboard) (next models.Dashboard, changed bool) {
	next = fn(s.current)
	if sameSnapshot(s.current, next) {
		return s.current, false
	}

	s.current = next
	s.revision++
	for _, sub := range s.subscribers {
		sub.fn(next)
	}
	return next, true
}

// Subscribe registers fn to be called with every new snapshot, in
// registration order. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(models.Dashboard)) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// sameSnapshot reports whether b is the very value a was, which is what the
// operations return when a precondition fails.
func sameSnapshot(a, b models.Dashboard) bool {
	if len(a.Categories) != len(b.Categories) {
		return false
	}
	if len(a.Categories) == 0 {
		return true
	}
	return &a.Categories[0] == &b.Categories[0]
}
