package docfinder_test

import (
	"math"
	"testing"

	"github.com/fwojciec/docfinder"
	"github.com/stretchr/testify/assert"
)

func TestLeadingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain number", "500", 500},
		{"currency prefix", "₹ 500", 500},
		{"currency without space", "₹300", 300},
		{"years suffix", "13 Years of experience", 13},
		{"first run wins", "10 years, 200 patients", 10},
		{"leading zeros", "007 years", 7},
		{"digits after letters", "Fee: INR500/visit", 500},
		{"no digits", "Free", 0},
		{"empty", "", 0},
		{"non-ASCII digits ignored", "٣ years", 0},
		{"overflow saturates", "99999999999999999999999 years", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docfinder.LeadingNumber(tt.in))
		})
	}
}

func TestParseFees(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 500, docfinder.ParseFees("₹ 500"))
	assert.Equal(t, 0, docfinder.ParseFees("on request"))
}

func TestParseExperience(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 13, docfinder.ParseExperience("13 Years of experience"))
	assert.Equal(t, 0, docfinder.ParseExperience("Fresher"))
}
