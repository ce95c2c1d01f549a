package resolver

import (
	"sort"
	"strings"

	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/romanize"
	"github.com/steelspace/kinograb/internal/text"
)

// Localized-title keys recognized as English-language. Seed keys are Czech
// country names, but English spellings are accepted too since records can
// come back from storage with either.
var (
	usaTitleKeys = []string{"USA", "Spojené státy", "Spojené státy americké", "United States", "United States of America"}
	ukTitleKeys  = []string{"Velká Británie", "Spojené království", "Anglie", "Great Britain", "United Kingdom", "UK", "England"}
)

// englishTitleKeys is the union scanned for the top-priority English title.
var englishTitleKeys = append(append([]string{}, usaTitleKeys...), ukTitleKeys...)

// CandidateTitles produces the deduplicated, priority-ordered search queries
// for a seed record. Origin-country titles go first (each prepended, so the
// last origin country encountered ends up on top), then the English-locale
// title, then the USA and UK titles, the primary title and every remaining
// localized title. Titles in the catalog's indexing language are the most
// likely to match, which is what this ordering encodes.
func CandidateTitles(film *models.Film) []string {
	var titles []string

	for _, country := range text.SplitCountries(film.Origin) {
		if title, ok := localizedTitle(film.Titles, country); ok {
			titles = append([]string{title}, titles...)
		}
	}

	for _, key := range englishTitleKeys {
		if title, ok := localizedTitle(film.Titles, key); ok {
			titles = append([]string{title}, titles...)
			break
		}
	}

	for _, keys := range [][]string{usaTitleKeys, ukTitleKeys} {
		for _, key := range keys {
			if title, ok := localizedTitle(film.Titles, key); ok {
				titles = append(titles, title)
				break
			}
		}
	}
	titles = append(titles, film.Title)

	// Remaining localized titles in sorted key order; maps have no encounter
	// order to preserve.
	keys := make([]string, 0, len(film.Titles))
	for key := range film.Titles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		titles = append(titles, film.Titles[key])
	}

	deduped := dedupeTitles(titles)

	// Alternate romanized spellings are strictly lower priority than every
	// title the seed actually carries.
	seen := make(map[string]bool, len(deduped))
	for _, title := range deduped {
		seen[strings.ToLower(title)] = true
	}
	for _, title := range deduped {
		romanized := romanize.ToEnglish(title)
		if romanized == title {
			continue
		}
		if key := strings.ToLower(romanized); !seen[key] {
			seen[key] = true
			deduped = append(deduped, romanized)
		}
	}

	return deduped
}

// dedupeTitles trims, drops empties and removes case-insensitive duplicates
// while preserving first-seen order.
func dedupeTitles(titles []string) []string {
	result := make([]string, 0, len(titles))
	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, title)
	}
	return result
}

// localizedTitle looks up a localized title by country key, tolerating case
// differences.
func localizedTitle(titles map[string]string, key string) (string, bool) {
	if title, ok := titles[key]; ok {
		return title, true
	}
	for k, title := range titles {
		if strings.EqualFold(k, key) {
			return title, true
		}
	}
	return "", false
}

// acceptanceSet collects the normalized titles a search result may match to
// count as title-confirmed: the primary title, the query that produced the
// result and every localized title.
func acceptanceSet(film *models.Film, query string) map[string]bool {
	set := make(map[string]bool, len(film.Titles)+2)
	add := func(s string) {
		if n := text.NormalizeTitle(s); n != "" {
			set[n] = true
		}
	}

	add(film.Title)
	add(query)
	for _, title := range film.Titles {
		add(title)
	}
	return set
}
