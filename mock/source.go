package mock

import (
	"context"

	"github.com/fwojciec/docfinder"
)

var _ docfinder.DoctorSource = (*DoctorSource)(nil)

// DoctorSource is a mock implementation of docfinder.DoctorSource.
type DoctorSource struct {
	FetchDoctorsFn func(ctx context.Context) ([]*docfinder.Doctor, error)
}

func (s *DoctorSource) FetchDoctors(ctx context.Context) ([]*docfinder.Doctor, error) {
	return s.FetchDoctorsFn(ctx)
}
