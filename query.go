package docfinder

import (
	"net/url"
	"strings"
)

// Query parameters carrying a FilterState.
const (
	ParamSearch       = "q"
	ParamConsultation = "consultation"
	ParamSpecialties  = "specialties"
	ParamSort         = "sort"
)

// specialtySeparator joins specialty names in the specialties parameter.
// Names containing it do not survive a round trip.
const specialtySeparator = ","

// EncodeQuery serializes state as a URL query string without the leading
// "?". Parameters holding their default are omitted, so the zero state
// encodes as "".
func EncodeQuery(state FilterState) string {
	params := url.Values{}
	if state.Search != "" {
		params.Set(ParamSearch, state.Search)
	}
	if state.Consultation != ConsultationAny {
		params.Set(ParamConsultation, string(state.Consultation))
	}
	if len(state.Specialties) > 0 {
		params.Set(ParamSpecialties, strings.Join(state.Specialties, specialtySeparator))
	}
	if state.Sort != SortNone {
		params.Set(ParamSort, string(state.Sort))
	}
	return params.Encode()
}

// DecodeQuery rebuilds a FilterState from a URL query string, with or
// without the leading "?". Missing parameters and unrecognized values
// decode to their defaults. Decoding never fails: malformed pairs are
// skipped.
func DecodeQuery(query string) FilterState {
	// ParseQuery keeps every pair it could parse alongside the first error.
	params, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))

	state := FilterState{
		Search:       params.Get(ParamSearch),
		Consultation: Consultation(params.Get(ParamConsultation)),
		Sort:         SortOption(params.Get(ParamSort)),
	}
	if !state.Consultation.Valid() {
		state.Consultation = ConsultationAny
	}
	if !state.Sort.Valid() {
		state.Sort = SortNone
	}
	if v := params.Get(ParamSpecialties); v != "" {
		state.Specialties = splitSpecialties(v)
	}
	return state
}

// ParseLink decodes the FilterState carried by a shareable link. The link
// may be an absolute URL, a path with a query, or a bare query string.
func ParseLink(link string) (FilterState, error) {
	if !strings.Contains(link, "?") && !strings.Contains(link, "://") {
		return DecodeQuery(link), nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return FilterState{}, Errorf(EINVALID, "invalid link %q", link)
	}
	return DecodeQuery(u.RawQuery), nil
}

// FormatLink returns base with state encoded as its query. The query is
// dropped entirely when state is the zero state.
func FormatLink(base string, state FilterState) string {
	base, _, _ = strings.Cut(base, "?")
	if query := EncodeQuery(state); query != "" {
		return base + "?" + query
	}
	return base
}

// splitSpecialties splits a specialties parameter, dropping empty names
// and repeats.
func splitSpecialties(v string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, name := range strings.Split(v, specialtySeparator) {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
