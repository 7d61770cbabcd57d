package mock

import "github.com/fwojciec/docfinder"

var _ docfinder.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of docfinder.Suggester.
type Suggester struct {
	SuggestFn func(partial string) []*docfinder.Doctor
}

func (s *Suggester) Suggest(partial string) []*docfinder.Doctor {
	return s.SuggestFn(partial)
}
