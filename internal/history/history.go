// Package history keeps the recent passwords of a session as an immutable value.
// Every operation returns a new History; callers own where it is stored.
package history

import "time"

// DefaultCapacity is used when a History is created with a non-positive capacity.
const DefaultCapacity = 10

// Entry is one generated password.
type Entry struct {
	ID        string    `json:"id"`
	Password  string    `json:"password"`
	Length    int       `json:"length"`
	PoolSize  int       `json:"pool_size"`
	Bits      float64   `json:"entropy_bits"`
	Strength  string    `json:"strength"`
	CreatedAt time.Time `json:"created_at"`
}

// History is an ordered list of entries, newest first.
type History struct {
	entries  []Entry
	capacity int
}

// New returns an empty History holding at most capacity entries.
func New(capacity int) History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return History{capacity: capacity}
}

// FromEntries rebuilds a History from stored entries, trimming to capacity.
func FromEntries(capacity int, entries []Entry) History {
	h := New(capacity)
	n := len(entries)
	if n > h.capacity {
		n = h.capacity
	}
	h.entries = append([]Entry(nil), entries[:n]...)
	return h
}

// Push returns a History with e first. An older entry with the same non-empty ID is dropped.
func (h History) Push(e Entry) History {
	out := make([]Entry, 0, h.Cap())
	out = append(out, e)
	for _, old := range h.entries {
		if len(out) == h.Cap() {
			break
		}
		if e.ID != "" && old.ID == e.ID {
			continue
		}
		out = append(out, old)
	}
	return History{entries: out, capacity: h.Cap()}
}

// Remove returns a History without the entry id, and whether it was present.
func (h History) Remove(id string) (History, bool) {
	out := make([]Entry, 0, len(h.entries))
	found := false
	for _, e := range h.entries {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return History{entries: out, capacity: h.Cap()}, found
}

// Clear returns an empty History with the same capacity.
func (h History) Clear() History {
	return New(h.Cap())
}

// Entries returns a copy of the entries, newest first. Never nil.
func (h History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h History) Len() int {
	return len(h.entries)
}

// Cap is the maximum number of entries kept.
func (h History) Cap() int {
	if h.capacity <= 0 {
		return DefaultCapacity
	}
	return h.capacity
}
