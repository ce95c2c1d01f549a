package imdb

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/text"
)

// titleLink pulls the tt identifier out of a title page link.
var titleLink = regexp.MustCompile(`/title/(tt\d+)`)

// Find-page layouts seen in the wild. The catalog serves either the legacy
// table markup or the modern React list depending on which variant the
// request lands on, so the parser recognizes both.
const (
	layoutLegacy = "legacy"
	layoutModern = "modern"
	layoutEmpty  = "empty"
)

// typePatterns maps lowercased substrings of a result's descriptive text to
// a type hint. Longer markers come first so "tv short" is not swallowed by
// "short" and "video game" is not swallowed by "video".
var typePatterns = []struct {
	marker string
	t      models.TitleType
}{
	{"podcast series", models.TitleTypePodcastSeries},
	{"podcast episode", models.TitleTypePodcastEpisode},
	{"tv mini series", models.TitleTypeTVMiniSeries},
	{"tv mini-series", models.TitleTypeTVMiniSeries},
	{"tv series", models.TitleTypeTVSeries},
	{"tv episode", models.TitleTypeTVEpisode},
	{"tv movie", models.TitleTypeTVMovie},
	{"tv special", models.TitleTypeTVSpecial},
	{"tv short", models.TitleTypeTVShort},
	{"video game", models.TitleTypeVideoGame},
	{"music video", models.TitleTypeMusicVideo},
	{"short", models.TitleTypeShort},
	{"video", models.TitleTypeVideo},
}

// typeHintFromText pattern-matches a type hint out of free-form result text
// like "(1998) (TV Series)".
func typeHintFromText(s string) models.TitleType {
	lower := strings.ToLower(s)
	for _, p := range typePatterns {
		if strings.Contains(lower, p.marker) {
			return p.t
		}
	}
	return models.TitleTypeUnknown
}

// parseFindResults extracts title candidates from a find page. Both layouts
// are scanned, legacy table cells first, and candidates are deduplicated by
// identifier with the first occurrence winning. The returned layout label
// says which markup produced results.
func parseFindResults(body io.Reader) ([]models.Candidate, string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse search results: %w", err)
	}

	logger := config.GetLogger()

	var candidates []models.Candidate
	seen := make(map[string]bool)
	add := func(c models.Candidate) {
		if seen[c.ID] {
			return
		}
		seen[c.ID] = true
		candidates = append(candidates, c)
	}

	legacyCount := 0
	doc.Find("td.result_text").Each(func(_ int, cell *goquery.Selection) {
		c, ok := parseLegacyResult(cell)
		if !ok {
			return
		}
		legacyCount++
		add(c)
	})

	modernCount := 0
	doc.Find("li.ipc-metadata-list-summary-item").Each(func(_ int, card *goquery.Selection) {
		c, ok := parseModernResult(card)
		if !ok {
			return
		}
		modernCount++
		add(c)
	})

	layout := layoutEmpty
	switch {
	case legacyCount > 0:
		layout = layoutLegacy
	case modernCount > 0:
		layout = layoutModern
	}

	logger.Debug().
		Int("legacy", legacyCount).
		Int("modern", modernCount).
		Int("candidates", len(candidates)).
		Msg("Parsed search results")

	return candidates, layout, nil
}

// parseLegacyResult reads one legacy table cell, e.g.
//
//	<td class="result_text"><a href="/title/tt0120586/">American History X</a> (1998)</td>
//
// The year and type hint come from the text after the link, so a year baked
// into the title itself ("2001: A Space Odyssey") is not mistaken for a
// release year.
func parseLegacyResult(cell *goquery.Selection) (models.Candidate, bool) {
	link := cell.Find("a").First()
	href, exists := link.Attr("href")
	if !exists {
		return models.Candidate{}, false
	}
	m := titleLink.FindStringSubmatch(href)
	if m == nil {
		return models.Candidate{}, false
	}

	title := strings.TrimSpace(link.Text())
	full := strings.TrimSpace(cell.Text())
	rest := full
	if title != "" {
		if idx := strings.Index(full, title); idx >= 0 {
			rest = full[idx+len(title):]
		}
	}

	return models.Candidate{
		ID:    m[1],
		Title: title,
		Year:  text.ExtractYear(rest),
		Text:  full,
		Type:  typeHintFromText(rest),
	}, true
}

// parseModernResult reads one card of the modern list layout. The title link
// carries an aria-label ("View title page for Framed"); the label spans below
// it hold the year, the kind of entry and other metadata.
func parseModernResult(card *goquery.Selection) (models.Candidate, bool) {
	link := card.Find("a.ipc-metadata-list-summary-item__t").First()
	href, exists := link.Attr("href")
	if !exists {
		return models.Candidate{}, false
	}
	m := titleLink.FindStringSubmatch(href)
	if m == nil {
		return models.Candidate{}, false
	}

	title := strings.TrimPrefix(strings.TrimSpace(link.AttrOr("aria-label", "")), "View title page for ")
	if title == "" {
		title = strings.TrimSpace(link.Text())
	}

	var year string
	hint := models.TitleTypeUnknown
	var labels []string
	card.Find(".ipc-metadata-list-summary-item__li").Each(func(_ int, span *goquery.Selection) {
		label := strings.TrimSpace(span.Text())
		if label == "" {
			return
		}
		labels = append(labels, label)
		if year == "" {
			year = text.ExtractYear(label)
		}
		if hint == models.TitleTypeUnknown {
			hint = models.ParseTitleType(label)
		}
	})

	labelText := strings.Join(labels, " ")
	if hint == models.TitleTypeUnknown {
		hint = typeHintFromText(labelText)
	}

	return models.Candidate{
		ID:    m[1],
		Title: title,
		Year:  year,
		Text:  labelText,
		Type:  hint,
	}, true
}
