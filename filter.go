package docfinder

import (
	"cmp"
	"slices"
	"strings"
)

// Consultation selects doctors by how they consult.
type Consultation string

// Consultation constants for FilterState.
const (
	ConsultationAny    Consultation = ""
	ConsultationVideo  Consultation = "video_consult"
	ConsultationClinic Consultation = "in_clinic"
)

// Valid reports whether c is a recognized consultation type.
func (c Consultation) Valid() bool {
	switch c {
	case ConsultationAny, ConsultationVideo, ConsultationClinic:
		return true
	}
	return false
}

// SortOption orders the displayed doctors.
type SortOption string

// SortOption constants for FilterState.
const (
	SortNone         SortOption = ""
	SortByFees       SortOption = "fees"
	SortByExperience SortOption = "experience"
)

// Valid reports whether s is a recognized sort option.
func (s SortOption) Valid() bool {
	switch s {
	case SortNone, SortByFees, SortByExperience:
		return true
	}
	return false
}

// FilterState is the user's current search, filter, and sort selection.
// The zero value selects every doctor in collection order.
type FilterState struct {
	Search       string       `json:"q"`
	Consultation Consultation `json:"consultation"`
	Specialties  []string     `json:"specialties"`
	Sort         SortOption   `json:"sort"`
}

// IsZero reports whether every field holds its default.
func (s FilterState) IsZero() bool {
	return s.Search == "" && s.Consultation == ConsultationAny && len(s.Specialties) == 0 && s.Sort == SortNone
}

// HasSpecialty reports whether name is selected.
func (s FilterState) HasSpecialty(name string) bool {
	return slices.Contains(s.Specialties, name)
}

// Equal reports whether s and other select the same doctors in the same
// order. Specialties are compared as sets.
func (s FilterState) Equal(other FilterState) bool {
	if s.Search != other.Search || s.Consultation != other.Consultation || s.Sort != other.Sort {
		return false
	}
	a, b := specialtySet(s.Specialties), specialtySet(other.Specialties)
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a copy of s that shares no memory with it.
func (s FilterState) Clone() FilterState {
	s.Specialties = slices.Clone(s.Specialties)
	return s
}

// FilterDoctors returns the doctors matching every predicate of state,
// in their original order. Doctors are never copied.
func FilterDoctors(doctors []*Doctor, state FilterState) []*Doctor {
	search := strings.ToLower(state.Search)
	selected := specialtySet(state.Specialties)

	result := make([]*Doctor, 0, len(doctors))
	for _, d := range doctors {
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		if state.Consultation == ConsultationVideo && !d.VideoConsult {
			continue
		}
		if state.Consultation == ConsultationClinic && !d.InClinic {
			continue
		}
		if len(selected) > 0 && !d.HasSpecialty(selected) {
			continue
		}
		result = append(result, d)
	}
	return result
}

// SortDoctors returns doctors ordered by option. The input is never
// modified. SortNone, or an unrecognized option, returns doctors as is.
// Doctors with equal keys keep their relative order.
func SortDoctors(doctors []*Doctor, option SortOption) []*Doctor {
	var compare func(a, b *Doctor) int
	switch option {
	case SortByFees:
		compare = func(a, b *Doctor) int {
			return cmp.Compare(ParseFees(a.Fees), ParseFees(b.Fees))
		}
	case SortByExperience:
		compare = func(a, b *Doctor) int {
			return cmp.Compare(ParseExperience(b.Experience), ParseExperience(a.Experience))
		}
	default:
		return doctors
	}

	sorted := slices.Clone(doctors)
	slices.SortStableFunc(sorted, compare)
	return sorted
}

// ExtractSpecialties returns every specialty practiced by any of the
// doctors, without duplicates, in ascending byte order.
func ExtractSpecialties(doctors []*Doctor) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, d := range doctors {
		for _, s := range d.Specialties {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			names = append(names, s.Name)
		}
	}
	slices.Sort(names)
	return names
}

func specialtySet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
