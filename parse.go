package docfinder

import (
	"math"
	"strconv"
)

// ParseFees returns the consultation fee embedded in a fee descriptor
// such as "₹ 500". Returns 0 if the descriptor holds no digits.
func ParseFees(fees string) int {
	return LeadingNumber(fees)
}

// ParseExperience returns the years of experience embedded in a descriptor
// such as "13 Years of experience". Returns 0 if the descriptor holds no digits.
func ParseExperience(experience string) int {
	return LeadingNumber(experience)
}

// LeadingNumber returns the integer formed by the first run of ASCII
// decimal digits in s, or 0 if s holds none. Runs too large for an int
// saturate at math.MaxInt.
func LeadingNumber(s string) int {
	start := -1
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}

	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return math.MaxInt
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
