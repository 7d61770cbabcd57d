// Package slog provides log/slog decorators for docfinder ports.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docfinder"
)

// Ensure LoggingDoctorSource implements docfinder.DoctorSource.
var _ docfinder.DoctorSource = (*LoggingDoctorSource)(nil)

// LoggingDoctorSource wraps a DoctorSource with logging.
type LoggingDoctorSource struct {
	next   docfinder.DoctorSource
	logger *slog.Logger
}

// NewLoggingDoctorSource creates a new LoggingDoctorSource.
func NewLoggingDoctorSource(next docfinder.DoctorSource, logger *slog.Logger) *LoggingDoctorSource {
	return &LoggingDoctorSource{next: next, logger: logger}
}

// FetchDoctors delegates to the wrapped source and logs the operation.
func (s *LoggingDoctorSource) FetchDoctors(ctx context.Context) (doctors []*docfinder.Doctor, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "fetch doctors",
			"count", len(doctors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchDoctors(ctx)
}
