// Package memory provides an in-memory implementation of docfinder.Navigator
// that models a browser's session history.
package memory

import (
	"sync"

	"github.com/fwojciec/docfinder"
)

// Ensure History implements docfinder.Navigator at compile time.
var _ docfinder.Navigator = (*History)(nil)

// History is a session history stack of query strings for a single page.
// Back and Forward move through the stack and notify subscribers, the way
// a browser fires popstate.
type History struct {
	mu      sync.Mutex
	path    string
	entries []string
	index   int
	subs    []subscription
	nextID  int
}

type subscription struct {
	id int
	fn func(query string)
}

// NewHistory returns a History for path whose only entry holds query.
func NewHistory(path, query string) *History {
	return &History{
		path:    path,
		entries: []string{trimQuery(query)},
	}
}

// Query returns the query of the current entry.
func (h *History) Query() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// ReplaceQuery rewrites the current entry.
func (h *History) ReplaceQuery(query string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = trimQuery(query)
}

// Push adds a new entry after the current one, discarding any entries
// that could have been reached with Forward. Subscribers are not notified.
func (h *History) Push(query string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], trimQuery(query))
	h.index++
}

// Visit pushes a new entry, as Push does, and notifies subscribers of it.
// It models a same-page navigation such as following an in-page link.
func (h *History) Visit(query string) {
	h.Push(query)
	h.move(0)
}

// Back moves to the previous entry and notifies subscribers.
// Returns false if there is no previous entry.
func (h *History) Back() bool {
	return h.move(-1)
}

// Forward moves to the next entry and notifies subscribers.
// Returns false if there is no next entry.
func (h *History) Forward() bool {
	return h.move(1)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Location returns the path and query of the current entry.
func (h *History) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if q := h.entries[h.index]; q != "" {
		return h.path + "?" + q
	}
	return h.path
}

// Subscribe registers fn for back/forward notifications.
func (h *History) Subscribe(fn func(query string)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs = append(h.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for i, s := range h.subs {
				if s.id == id {
					h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
					break
				}
			}
		})
	}
}

func (h *History) move(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	query := h.entries[next]
	subs := append([]subscription(nil), h.subs...)
	h.mu.Unlock()

	// Notify outside the lock so subscribers may call back into History.
	for _, s := range subs {
		s.fn(query)
	}
	return true
}

func trimQuery(query string) string {
	if len(query) > 0 && query[0] == '?' {
		return query[1:]
	}
	return query
}
