package docfinder

import "strings"

// MaxSuggestions is the most doctors a suggestion list holds.
const MaxSuggestions = 3

// Suggester proposes doctors for a partially typed name.
type Suggester interface {
	// Suggest returns at most MaxSuggestions doctors whose name contains
	// partial, ignoring case, in collection order. Returns an empty list
	// when partial is blank.
	Suggest(partial string) []*Doctor
}

// SuggestDoctors returns the first MaxSuggestions doctors whose name
// contains partial, ignoring case. A blank partial matches nothing.
func SuggestDoctors(doctors []*Doctor, partial string) []*Doctor {
	if strings.TrimSpace(partial) == "" {
		return []*Doctor{}
	}

	partial = strings.ToLower(partial)
	matches := make([]*Doctor, 0, MaxSuggestions)
	for _, d := range doctors {
		if !strings.Contains(strings.ToLower(d.Name), partial) {
			continue
		}
		matches = append(matches, d)
		if len(matches) == MaxSuggestions {
			break
		}
	}
	return matches
}

var _ Suggester = (*LinearSuggester)(nil)

// LinearSuggester scans the whole collection on every call.
type LinearSuggester struct {
	doctors []*Doctor
}

// NewLinearSuggester returns a Suggester over doctors.
func NewLinearSuggester(doctors []*Doctor) *LinearSuggester {
	return &LinearSuggester{doctors: doctors}
}

// Suggest implements Suggester.
func (s *LinearSuggester) Suggest(partial string) []*Doctor {
	return SuggestDoctors(s.doctors, partial)
}
