// Package http provides an HTTP-based implementation of docfinder.DoctorSource
// that reads the directory from a static JSON endpoint.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docfinder"
)

// DefaultEndpoint serves the doctor directory as a JSON array.
const DefaultEndpoint = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure DoctorSource implements docfinder.DoctorSource at compile time.
var _ docfinder.DoctorSource = (*DoctorSource)(nil)

// DoctorSource retrieves the doctor directory with a single GET request.
// It never retries: a failed fetch is reported to the caller as is.
type DoctorSource struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// Option configures a DoctorSource.
type Option func(*DoctorSource)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *DoctorSource) {
		s.timeout = d
	}
}

// WithEndpoint sets the URL the directory is read from.
// Defaults to DefaultEndpoint if not specified.
func WithEndpoint(url string) Option {
	return func(s *DoctorSource) {
		s.endpoint = url
	}
}

// NewDoctorSource creates a new HTTP-based DoctorSource.
func NewDoctorSource(opts ...Option) *DoctorSource {
	s := &DoctorSource{
		endpoint: DefaultEndpoint,
		timeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Endpoint returns the URL the directory is read from.
func (s *DoctorSource) Endpoint() string {
	return s.endpoint
}

// FetchDoctors retrieves and decodes the directory.
func (s *DoctorSource) FetchDoctors(ctx context.Context) ([]*docfinder.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, docfinder.Errorf(docfinder.EINVALID, "invalid endpoint %q: %v", s.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, docfinder.Errorf(docfinder.EUNAVAILABLE, "Failed to fetch doctors: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, docfinder.Errorf(docfinder.EUNAVAILABLE, "Failed to fetch doctors: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, docfinder.Errorf(docfinder.EUNAVAILABLE, "Failed to fetch doctors: %v", err)
	}

	return decodeDoctors(body)
}

// decodeDoctors parses a JSON array of doctors and validates each record.
func decodeDoctors(body []byte) ([]*docfinder.Doctor, error) {
	var doctors []*docfinder.Doctor
	if err := json.Unmarshal(body, &doctors); err != nil {
		return nil, docfinder.Errorf(docfinder.EINVALID, "malformed doctor payload: %v", err)
	}
	if doctors == nil {
		return nil, docfinder.Errorf(docfinder.EINVALID, "malformed doctor payload: expected a JSON array")
	}

	for i, d := range doctors {
		if d == nil {
			return nil, docfinder.Errorf(docfinder.EINVALID, "malformed doctor payload: null record at index %d", i)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("doctor at index %d: %w", i, err)
		}
	}

	return doctors, nil
}
