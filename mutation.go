package docfinder

import "slices"

// Mutation is a single change to a FilterState.
// The implementations in this package are the only valid mutations.
type Mutation interface {
	apply(s FilterState) FilterState
}

var (
	_ Mutation = SetSearch{}
	_ Mutation = SetConsultation{}
	_ Mutation = ToggleSpecialty{}
	_ Mutation = SetSort{}
	_ Mutation = ClearAll{}
)

// SetSearch replaces the search text.
type SetSearch struct {
	Text string
}

func (m SetSearch) apply(s FilterState) FilterState {
	s.Search = m.Text
	return s
}

// SetConsultation selects a consultation type. Unrecognized types clear
// the selection.
type SetConsultation struct {
	Consultation Consultation
}

func (m SetConsultation) apply(s FilterState) FilterState {
	s.Consultation = m.Consultation
	if !s.Consultation.Valid() {
		s.Consultation = ConsultationAny
	}
	return s
}

// ToggleSpecialty selects the named specialty, or deselects it if it is
// already selected. An empty name leaves the state unchanged.
type ToggleSpecialty struct {
	Name string
}

func (m ToggleSpecialty) apply(s FilterState) FilterState {
	if m.Name == "" {
		return s
	}
	if i := slices.Index(s.Specialties, m.Name); i >= 0 {
		s.Specialties = slices.Delete(s.Specialties, i, i+1)
	} else {
		s.Specialties = append(s.Specialties, m.Name)
	}
	if len(s.Specialties) == 0 {
		s.Specialties = nil
	}
	return s
}

// SetSort selects a sort option. Unrecognized options clear the selection.
type SetSort struct {
	Sort SortOption
}

func (m SetSort) apply(s FilterState) FilterState {
	s.Sort = m.Sort
	if !s.Sort.Valid() {
		s.Sort = SortNone
	}
	return s
}

// ClearAll resets every field to its default.
type ClearAll struct{}

func (ClearAll) apply(FilterState) FilterState {
	return FilterState{}
}

// Apply returns the state produced by applying m to s. s is not modified.
func (s FilterState) Apply(m Mutation) FilterState {
	return m.apply(s.Clone())
}
