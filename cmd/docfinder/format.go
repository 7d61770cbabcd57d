package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/search"
)

// defaultPath is the page path used when a link carries none.
const defaultPath = "/"

// linkPath returns the part of link before its query, or defaultPath for a
// bare query string.
func linkPath(link string) string {
	if !strings.Contains(link, "?") && !strings.Contains(link, "://") {
		return defaultPath
	}
	u, err := url.Parse(link)
	if err != nil {
		return defaultPath
	}
	u.RawQuery = ""
	u.Fragment = ""
	if s := u.String(); s != "" {
		return s
	}
	return defaultPath
}

// renderResults writes the result count and one line per doctor, or the
// no-results message.
func renderResults(w io.Writer, v search.View) {
	if v.Empty() {
		fmt.Fprintln(w, "No doctors found matching your criteria.")
		fmt.Fprintln(w, "Try adjusting your filters or search terms.")
		return
	}

	noun := "doctors"
	if len(v.Doctors) == 1 {
		noun = "doctor"
	}
	fmt.Fprintf(w, "%d %s found\n", len(v.Doctors), noun)
	for _, d := range v.Doctors {
		fmt.Fprintln(w, formatDoctor(d))
	}
}

// formatDoctor renders a doctor on a single line.
func formatDoctor(d *docfinder.Doctor) string {
	names := make([]string, 0, len(d.Specialties))
	for _, s := range d.Specialties {
		names = append(names, s.Name)
	}

	var modes []string
	if d.VideoConsult {
		modes = append(modes, "video")
	}
	if d.InClinic {
		modes = append(modes, "clinic")
	}

	parts := []string{
		d.Name,
		strings.Join(names, ", "),
		d.Experience,
		d.Fees,
		strings.Join(modes, "+"),
	}
	if clinic := formatClinic(d.Clinic); clinic != "" {
		parts = append(parts, clinic)
	}
	return strings.Join(parts, "  ")
}

func formatClinic(c docfinder.Clinic) string {
	switch {
	case c.Name != "" && c.Address.Locality != "":
		return c.Name + ", " + c.Address.Locality
	case c.Name != "":
		return c.Name
	}
	return c.Address.Locality
}

// formatFilter summarizes the active filters on one line.
func formatFilter(s docfinder.FilterState) string {
	if s.IsZero() {
		return "filters: none"
	}

	var parts []string
	if s.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", s.Search))
	}
	if s.Consultation != docfinder.ConsultationAny {
		parts = append(parts, "consultation="+string(s.Consultation))
	}
	if len(s.Specialties) > 0 {
		parts = append(parts, "specialties="+strings.Join(s.Specialties, ","))
	}
	if s.Sort != docfinder.SortNone {
		parts = append(parts, "sort="+string(s.Sort))
	}
	return "filters: " + strings.Join(parts, " ")
}
