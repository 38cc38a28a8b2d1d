package taxcalc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	leadingNumber     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	disallowedRateChr = regexp.MustCompile(`[^0-9.,]`)
)

// SanitizeRateInput keeps only digits, commas and dots, mirroring what the
// rate text field accepts while the user types.
func SanitizeRateInput(text string) string {
	return disallowedRateChr.ReplaceAllString(text, "")
}

// ParseRate reads a percentage typed by a user. Commas are decimal
// separators and only the leading number counts, so "1,5" is 1.5 and
// "2.5%" is 2.5. Anything without a leading number, or that overflows,
// is 0.
func ParseRate(text string) float64 {
	normalized := strings.TrimLeftFunc(strings.ReplaceAll(text, ",", "."), unicode.IsSpace)

	match := leadingNumber.FindString(normalized)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}
