package patricia_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/patricia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorsNamed(names ...string) []*docfinder.Doctor {
	doctors := make([]*docfinder.Doctor, 0, len(names))
	for i, name := range names {
		doctors = append(doctors, &docfinder.Doctor{ID: fmt.Sprint(i + 1), Name: name})
	}
	return doctors
}

func names(doctors []*docfinder.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.Name)
	}
	return out
}

func TestSuggester_Suggest(t *testing.T) {
	t.Parallel()

	t.Run("matches substrings ignoring case", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(doctorsNamed("Dr. Amy Lee", "Dr. Bo Tan", "Dr. Lee Park"))

		assert.Equal(t, []string{"Dr. Amy Lee", "Dr. Lee Park"}, names(s.Suggest("LEE")))
		assert.Equal(t, []string{"Dr. Bo Tan"}, names(s.Suggest("o t")))
	})

	t.Run("returns at most three in collection order", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(doctorsNamed("Dr. Zed", "Dr. Amy", "Dr. Bo", "Dr. Cy", "Dr. Di"))

		assert.Equal(t, []string{"Dr. Zed", "Dr. Amy", "Dr. Bo"}, names(s.Suggest("dr")))
	})

	t.Run("blank input suggests nothing", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(doctorsNamed("Dr. Amy Lee"))

		for _, partial := range []string{"", " ", "\t"} {
			got := s.Suggest(partial)
			require.NotNil(t, got)
			assert.Empty(t, got)
		}
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(doctorsNamed("Dr. Amy Lee"))

		got := s.Suggest("xyz")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("repeated substrings in one name yield one suggestion", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(doctorsNamed("Dr. Anna Annan"))

		assert.Equal(t, []string{"Dr. Anna Annan"}, names(s.Suggest("an")))
	})

	t.Run("handles multi-byte names", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(doctorsNamed("Dr. Zoë Müller", "Dr. Bo Tan"))

		assert.Equal(t, []string{"Dr. Zoë Müller"}, names(s.Suggest("ÜLL")))
		assert.Equal(t, []string{"Dr. Zoë Müller"}, names(s.Suggest("ë m")))
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		s := patricia.NewSuggester(nil)

		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Suggest("amy"))
	})

	t.Run("agrees with linear scan", func(t *testing.T) {
		t.Parallel()

		pool := []string{"Dr. Amy Lee", "Dr. Bo Tan", "Dr. Chen Wu", "Dr. Amit Roy", "Dr. Lee Park", "Dr. Zoe Tanaka", "Dr. Anna Annan"}
		partials := []string{"a", "am", "lee", "TAN", " ", "dr. ", "n", "wu", "an a", "ee p", "q"}

		r := rand.New(rand.NewSource(7))
		for round := 0; round < 20; round++ {
			n := r.Intn(12)
			chosen := make([]string, 0, n)
			for i := 0; i < n; i++ {
				chosen = append(chosen, pool[r.Intn(len(pool))])
			}
			doctors := doctorsNamed(chosen...)
			s := patricia.NewSuggester(doctors)

			require.Equal(t, len(doctors), s.Len())
			for _, partial := range partials {
				want := docfinder.SuggestDoctors(doctors, partial)
				got := s.Suggest(partial)
				assert.Equal(t, want, got, "round %d partial %q", round, partial)
			}
		}
	})
}
