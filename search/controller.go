// Package search provides the page-level controller of the doctor directory.
// It owns the doctor collection and the filter state, keeps the state in
// sync with the address bar, and derives the displayed doctors on demand.
package search

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/docfinder"
	"golang.org/x/sync/singleflight"
)

// Status reports how far the doctor collection has loaded.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// View is a snapshot of everything a page renders.
type View struct {
	Status Status
	Err    error

	Filter      docfinder.FilterState
	Specialties []string
	Doctors     []*docfinder.Doctor

	Input       string
	Suggestions []*docfinder.Doctor
}

// Empty reports whether the collection loaded but no doctor matches the
// filter. It is false while loading so that "no results" is never shown
// in place of a loading state.
func (v View) Empty() bool {
	return v.Status == StatusReady && len(v.Doctors) == 0
}

// Controller orchestrates the directory page. Set the exported fields, call
// Open, then Load. All methods are safe for concurrent use; every change to
// the filter state goes through Dispatch.
type Controller struct {
	Source    docfinder.DoctorSource
	Navigator docfinder.Navigator

	// NewSuggester builds the suggestion index once the collection loads.
	// Defaults to docfinder.NewLinearSuggester.
	NewSuggester func(doctors []*docfinder.Doctor) docfinder.Suggester

	// Debounce is the input quiet period before suggestions are computed.
	// Defaults to docfinder.DefaultDebounceInterval.
	Debounce  time.Duration
	AfterFunc docfinder.AfterFunc

	// OnSuggestions, if set, is called after every debounced suggestion
	// computation with the input it ran for. It must not block.
	OnSuggestions func(input string, suggestions []*docfinder.Doctor)

	Logger *slog.Logger

	mu          sync.Mutex
	status      Status
	err         error
	doctors     []*docfinder.Doctor
	specialties []string
	suggester   docfinder.Suggester
	state       docfinder.FilterState
	input       string
	suggestions []*docfinder.Doctor
	debouncer   *docfinder.Debouncer
	unsubscribe func()
	closed      bool

	load singleflight.Group
}

// Open seeds the filter state from the navigator's current query and starts
// following back/forward navigation.
func (c *Controller) Open() error {
	if c.Navigator == nil {
		return docfinder.Errorf(docfinder.EINVALID, "navigator required")
	}

	query := c.Navigator.Query()

	c.mu.Lock()
	c.state = docfinder.DecodeQuery(query)
	c.input = c.state.Search
	c.mu.Unlock()

	c.logger().Debug("search opened", "query", query)

	unsubscribe := c.Navigator.Subscribe(c.navigate)

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

// Close stops following navigation and drops any pending suggestion work.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.debouncer != nil {
		c.debouncer.Stop()
	}
	return nil
}

// Load fetches the doctor collection. The fetch happens at most once:
// concurrent callers share it and later callers get its outcome. A failed
// fetch is never retried.
func (c *Controller) Load(ctx context.Context) error {
	if c.Source == nil {
		return docfinder.Errorf(docfinder.EINVALID, "doctor source required")
	}

	c.mu.Lock()
	if done, err := c.resolvedLocked(); done {
		c.mu.Unlock()
		return err
	}
	c.status = StatusLoading
	c.mu.Unlock()

	_, err, _ := c.load.Do("doctors", func() (interface{}, error) {
		c.mu.Lock()
		if done, err := c.resolvedLocked(); done {
			c.mu.Unlock()
			return nil, err
		}
		c.mu.Unlock()

		begin := time.Now()
		doctors, err := c.Source.FetchDoctors(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()

		if err != nil {
			c.status = StatusFailed
			c.err = err
			c.logger().Error("load doctors", "err", err, "duration", time.Since(begin))
			return nil, err
		}

		c.doctors = doctors
		c.specialties = docfinder.ExtractSpecialties(doctors)
		c.suggester = c.newSuggester(doctors)
		c.status = StatusReady
		c.logger().Debug("load doctors",
			"count", len(doctors),
			"specialties", len(c.specialties),
			"duration", time.Since(begin),
		)

		// Input typed before the collection arrived is matched now.
		if text := c.input; text != "" {
			c.debouncerLocked().Trigger(func() { c.suggest(text) })
		}
		return nil, nil
	})
	return err
}

// Dispatch applies m to the filter state and writes the new state to the
// navigator's current entry.
func (c *Controller) Dispatch(m docfinder.Mutation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked(m)
}

// Clear resets every filter to its default.
func (c *Controller) Clear() {
	c.Dispatch(docfinder.ClearAll{})
}

// State returns the current filter state.
func (c *Controller) State() docfinder.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Type records the search input as typed. The echo updates immediately;
// suggestions follow once input has been quiet for the debounce interval.
func (c *Controller) Type(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.input = text
	c.debouncerLocked().Trigger(func() { c.suggest(text) })
}

// Suggestions returns the latest suggestion list.
func (c *Controller) Suggestions() []*docfinder.Doctor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.suggestions)
}

// SelectSuggestion searches for the name of the i-th suggestion and
// discards the list. Returns ENOTFOUND if there is no such suggestion.
func (c *Controller) SelectSuggestion(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.suggestions) {
		return docfinder.Errorf(docfinder.ENOTFOUND, "suggestion %d not found", i+1)
	}
	name := c.suggestions[i].Name
	c.dispatchLocked(docfinder.SetSearch{Text: name})
	c.input = name
	c.discardSuggestionsLocked()
	return nil
}

// Submit searches for the current input and discards the suggestions.
func (c *Controller) Submit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dispatchLocked(docfinder.SetSearch{Text: c.input})
	c.discardSuggestionsLocked()
}

// Blur discards the suggestions without searching.
func (c *Controller) Blur() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discardSuggestionsLocked()
}

// View derives the page from the collection and the filter state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Status:      c.status,
		Err:         c.err,
		Filter:      c.state.Clone(),
		Specialties: slices.Clone(c.specialties),
		Input:       c.input,
		Suggestions: slices.Clone(c.suggestions),
	}
	if c.status == StatusReady {
		v.Doctors = docfinder.SortDoctors(docfinder.FilterDoctors(c.doctors, c.state), c.state.Sort)
	}
	return v
}

// navigate follows a back/forward navigation. The state is rebuilt from
// the query and, unlike Dispatch, is not written back.
func (c *Controller) navigate(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.setStateLocked(docfinder.DecodeQuery(query))
	c.logger().Debug("search navigated", "query", query)
}

func (c *Controller) dispatchLocked(m docfinder.Mutation) {
	c.setStateLocked(c.state.Apply(m))
	query := docfinder.EncodeQuery(c.state)
	if c.Navigator != nil {
		c.Navigator.ReplaceQuery(query)
	}
	c.logger().Debug("search dispatched", "mutation", m, "query", query)
}

// setStateLocked replaces the state, resyncing the input echo when the
// committed search changed underneath it.
func (c *Controller) setStateLocked(state docfinder.FilterState) {
	prev := c.state.Search
	c.state = state
	if state.Search != prev {
		c.input = state.Search
		c.discardSuggestionsLocked()
	}
}

// suggest runs after the debounce interval for the input typed as text.
func (c *Controller) suggest(text string) {
	c.mu.Lock()
	if c.closed || c.input != text {
		c.mu.Unlock()
		return
	}
	c.suggestions = nil
	if c.suggester != nil {
		c.suggestions = c.suggester.Suggest(text)
	}
	suggestions := slices.Clone(c.suggestions)
	c.mu.Unlock()

	if c.OnSuggestions != nil {
		c.OnSuggestions(text, suggestions)
	}
}

func (c *Controller) discardSuggestionsLocked() {
	c.suggestions = nil
	if c.debouncer != nil {
		c.debouncer.Stop()
	}
}

// resolvedLocked reports whether the load already finished, and its error.
func (c *Controller) resolvedLocked() (bool, error) {
	switch c.status {
	case StatusReady:
		return true, nil
	case StatusFailed:
		return true, c.err
	}
	return false, nil
}

func (c *Controller) debouncerLocked() *docfinder.Debouncer {
	if c.debouncer == nil {
		interval := c.Debounce
		if interval <= 0 {
			interval = docfinder.DefaultDebounceInterval
		}
		c.debouncer = docfinder.NewDebouncer(interval, c.AfterFunc)
	}
	return c.debouncer
}

func (c *Controller) newSuggester(doctors []*docfinder.Doctor) docfinder.Suggester {
	if c.NewSuggester != nil {
		return c.NewSuggester(doctors)
	}
	return docfinder.NewLinearSuggester(doctors)
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
