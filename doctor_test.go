package docfinder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/fwojciec/docfinder"
	"github.com/stretchr/testify/assert"
)

// amyAndBo returns the two-doctor collection used by the scenario tests.
func amyAndBo() []*docfinder.Doctor {
	return []*docfinder.Doctor{
		{
			ID:           "1",
			Name:         "Dr. Amy Lee",
			Fees:         "₹500",
			Experience:   "10 years",
			VideoConsult: true,
			InClinic:     false,
			Specialties:  []docfinder.Specialty{{Name: "Cardiology"}},
		},
		{
			ID:           "2",
			Name:         "Dr. Bo Tan",
			Fees:         "₹300",
			Experience:   "5 years",
			VideoConsult: false,
			InClinic:     true,
			Specialties:  []docfinder.Specialty{{Name: "Dermatology"}},
		},
	}
}

var (
	randomNames       = []string{"Dr. Amy Lee", "Dr. Bo Tan", "Dr. Chen Wu", "Dr. Amit Roy", "Dr. Lee Park", "Dr. Zoe Tanaka"}
	randomSpecialties = []string{"Cardiology", "Dermatology", "Dentist", "ENT", "General Physician", "cardiology"}
)

// randomDoctors returns a reproducible pseudo-random collection of n doctors.
func randomDoctors(seed int64, n int) []*docfinder.Doctor {
	r := rand.New(rand.NewSource(seed))
	doctors := make([]*docfinder.Doctor, 0, n)
	for i := 0; i < n; i++ {
		var specialties []docfinder.Specialty
		for j := r.Intn(3); j > 0; j-- {
			specialties = append(specialties, docfinder.Specialty{Name: randomSpecialties[r.Intn(len(randomSpecialties))]})
		}
		fees := fmt.Sprintf("₹ %d", r.Intn(1000))
		if r.Intn(10) == 0 {
			fees = "on request"
		}
		doctors = append(doctors, &docfinder.Doctor{
			ID:           fmt.Sprint(i),
			Name:         randomNames[r.Intn(len(randomNames))],
			Fees:         fees,
			Experience:   fmt.Sprintf("%d Years of experience", r.Intn(40)),
			VideoConsult: r.Intn(2) == 0,
			InClinic:     r.Intn(2) == 0,
			Specialties:  specialties,
		})
	}
	return doctors
}

func TestDoctor_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts doctor with ID and name", func(t *testing.T) {
		t.Parallel()

		d := &docfinder.Doctor{ID: "1", Name: "Dr. Amy Lee"}

		assert.NoError(t, d.Validate())
	})

	t.Run("requires ID", func(t *testing.T) {
		t.Parallel()

		d := &docfinder.Doctor{Name: "Dr. Amy Lee"}

		assert.Equal(t, docfinder.EINVALID, docfinder.ErrorCode(d.Validate()))
	})

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		d := &docfinder.Doctor{ID: "1"}

		assert.Equal(t, docfinder.EINVALID, docfinder.ErrorCode(d.Validate()))
	})
}

func TestDoctor_HasSpecialty(t *testing.T) {
	t.Parallel()

	d := amyAndBo()[0]

	assert.True(t, d.HasSpecialty(map[string]struct{}{"Cardiology": {}, "ENT": {}}))
	assert.False(t, d.HasSpecialty(map[string]struct{}{"cardiology": {}}))
	assert.False(t, d.HasSpecialty(map[string]struct{}{}))
}
