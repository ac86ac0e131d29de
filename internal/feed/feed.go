// Package feed keeps the bounded, newest-first list of geofence events a
// subscriber holds for display. The bound is the only defense against
// unbounded memory growth on a long-lived subscription.
package feed

import (
	"sync"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultSize is the display bound used when none is configured.
const DefaultSize = 6

// Entry is one displayed event with its assigned id, which the consumer uses
// to dismiss the entry individually.
type Entry struct {
	ID    uuid.UUID             `json:"id"`
	Event *entity.GeofenceEvent `json:"event"`
}

// Feed is a bounded newest-first event list. Safe for concurrent use.
type Feed struct {
	mu      sync.Mutex
	max     int
	entries []*Entry
}

// New creates a feed bounded at max entries; max <= 0 uses DefaultSize.
func New(max int) *Feed {
	if max <= 0 {
		max = DefaultSize
	}

	return &Feed{max: max}
}

// Push prepends the event and evicts the oldest entries beyond the bound.
func (f *Feed) Push(event *entity.GeofenceEvent) *Entry {
	entry := &Entry{ID: uuid.New(), Event: event}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append([]*Entry{entry}, f.entries...)
	if len(f.entries) > f.max {
		f.entries = f.entries[:f.max]
	}

	return entry
}

// Dismiss removes the entry with the given id, leaving the others untouched.
// Returns false when no entry matches.
func (f *Feed) Dismiss(id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, entry := range f.entries {
		if entry.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)

			return true
		}
	}

	return false
}

// Entries returns a copy of the current list, newest first.
func (f *Feed) Entries() []*Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*Entry, len(f.entries))
	copy(out, f.entries)

	return out
}

// Len reports the current number of entries.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.entries)
}
