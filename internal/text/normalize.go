// Package text holds the pure text helpers every identity comparison in the
// resolver goes through: diacritic-stripping normalization for titles and
// person names, and the year extraction/matching rules.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "Amélie"
// becomes "Amelie". No recomposition step is needed because the callers
// filter on rune classes afterwards.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeTitle canonicalizes a title for identity comparison: combining
// marks dropped, everything except letters and digits removed, lowercased.
// Comparison on normalized forms is exact equality; fuzziness lives in the
// year tolerance, not here.
func NormalizeTitle(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// NormalizePersonName is the same pipeline as NormalizeTitle but keeps
// whitespace, with runs of it collapsed to a single space, so multi-word
// names stay comparable as names.
func NormalizePersonName(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// SplitCountries splits a free-text origin string ("USA / Velká Británie,
// 1985" style lists) into trimmed country names. Both "/" and "," act as
// separators; empty segments are dropped.
func SplitCountries(origin string) []string {
	fields := strings.FieldsFunc(origin, func(r rune) bool {
		return r == '/' || r == ','
	})

	countries := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			countries = append(countries, name)
		}
	}
	return countries
}
