package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docfinder"
)

// Ensure LoggingSuggester implements docfinder.Suggester.
var _ docfinder.Suggester = (*LoggingSuggester)(nil)

// LoggingSuggester wraps a Suggester with debug logging.
type LoggingSuggester struct {
	next   docfinder.Suggester
	logger *slog.Logger
}

// NewLoggingSuggester creates a new LoggingSuggester.
func NewLoggingSuggester(next docfinder.Suggester, logger *slog.Logger) *LoggingSuggester {
	return &LoggingSuggester{next: next, logger: logger}
}

// Suggest delegates to the wrapped suggester and logs the operation.
func (s *LoggingSuggester) Suggest(partial string) (doctors []*docfinder.Doctor) {
	defer func(begin time.Time) {
		s.logger.Debug("suggest",
			"partial", partial,
			"count", len(doctors),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Suggest(partial)
}
