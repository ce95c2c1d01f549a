package text

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExtractYear returns the first 4-digit run in free text, or "" when the text
// carries none. Seed years come with noise ("1985 (TV)", "1985/I") and this
// reduces them to the comparable form.
func ExtractYear(s string) string {
	return yearPattern.FindString(s)
}

// AllYears returns every 4-digit run in free text, in order of appearance.
// Episodic result blurbs embed several years and any of them may be the
// production year worth matching against.
func AllYears(s string) []string {
	return yearPattern.FindAllString(s, -1)
}

// YearsMatch reports whether two year strings denote the same release year
// within the given tolerance. Both inputs are reduced to their first 4-digit
// run first; if either has none, the years do not match.
func YearsMatch(a, b string, tolerance int) bool {
	ya := ExtractYear(a)
	yb := ExtractYear(b)
	if ya == "" || yb == "" {
		return false
	}
	if ya == yb {
		return true
	}

	ia, err := strconv.Atoi(ya)
	if err != nil {
		return false
	}
	ib, err := strconv.Atoi(yb)
	if err != nil {
		return false
	}

	diff := ia - ib
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
