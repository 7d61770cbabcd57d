package docfinder

import "context"

// Doctor represents a doctor listed in the directory.
// Doctors are read-only once fetched.
type Doctor struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	NameInitials string      `json:"name_initials"`
	Photo        string      `json:"photo,omitempty"`
	Introduction string      `json:"doctor_introduction,omitempty"`
	Specialties  []Specialty `json:"specialities"`
	Fees         string      `json:"fees"`
	Experience   string      `json:"experience"`
	Languages    []string    `json:"languages"`
	Clinic       Clinic      `json:"clinic"`
	VideoConsult bool        `json:"video_consult"`
	InClinic     bool        `json:"in_clinic"`
}

// Specialty is a named medical field a doctor practices in.
type Specialty struct {
	Name string `json:"name"`
}

// Clinic is the clinic a doctor is affiliated with.
type Clinic struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// Address locates a clinic.
type Address struct {
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1,omitempty"`
	Location     string `json:"location,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// Validate returns an error if the doctor contains invalid fields.
func (d *Doctor) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "doctor ID required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "doctor %q: name required", d.ID)
	}
	return nil
}

// HasSpecialty reports whether the doctor practices any of the named specialties.
func (d *Doctor) HasSpecialty(names map[string]struct{}) bool {
	for _, s := range d.Specialties {
		if _, ok := names[s.Name]; ok {
			return true
		}
	}
	return false
}

// DoctorSource retrieves the doctor collection.
type DoctorSource interface {
	// FetchDoctors returns every doctor in the directory.
	// Returns EUNAVAILABLE if the source cannot be reached and
	// EINVALID if the payload is malformed.
	FetchDoctors(ctx context.Context) ([]*Doctor, error)
}
