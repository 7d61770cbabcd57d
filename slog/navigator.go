package slog

import (
	"log/slog"

	"github.com/fwojciec/docfinder"
)

// Ensure LoggingNavigator implements docfinder.Navigator.
var _ docfinder.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with debug logging of every address
// bar rewrite and every back/forward navigation.
type LoggingNavigator struct {
	next   docfinder.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next docfinder.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Query delegates to the wrapped navigator.
func (n *LoggingNavigator) Query() string {
	return n.next.Query()
}

// ReplaceQuery logs the new query and delegates to the wrapped navigator.
func (n *LoggingNavigator) ReplaceQuery(query string) {
	n.logger.Debug("replace query", "query", query)
	n.next.ReplaceQuery(query)
}

// Subscribe delegates to the wrapped navigator, logging each navigation
// before fn sees it.
func (n *LoggingNavigator) Subscribe(fn func(query string)) (cancel func()) {
	return n.next.Subscribe(func(query string) {
		n.logger.Debug("navigate", "query", query)
		fn(query)
	})
}
