package imdb

import (
	"strings"
	"testing"

	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/testutil"
)

func TestParseFindResults_LegacyLayout(t *testing.T) {
	html := testutil.GenerateLegacyFindHTML([]testutil.LegacyFindResultOptions{
		{ID: "tt0120586", Title: "American History X", Rest: "(1998)"},
		{ID: "tt1302006", Title: "The Irishman", Rest: "(2019)"},
		{ID: "tt0460649", Title: "How I Met Your Mother", Rest: "(2005) (TV Series)"},
	})

	candidates, layout, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if layout != "legacy" {
		t.Errorf("Expected layout legacy, got %q", layout)
	}
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}

	first := candidates[0]
	if first.ID != "tt0120586" {
		t.Errorf("Expected ID tt0120586, got %s", first.ID)
	}
	if first.Title != "American History X" {
		t.Errorf("Expected title 'American History X', got %q", first.Title)
	}
	if first.Year != "1998" {
		t.Errorf("Expected year 1998, got %q", first.Year)
	}
	if first.Type != models.TitleTypeUnknown {
		t.Errorf("Expected no type hint, got %v", first.Type)
	}
	if first.Text != "American History X (1998)" {
		t.Errorf("Expected raw text preserved, got %q", first.Text)
	}

	series := candidates[2]
	if series.Year != "2005" {
		t.Errorf("Expected year 2005, got %q", series.Year)
	}
	if series.Type != models.TitleTypeTVSeries {
		t.Errorf("Expected TV Series type hint, got %v", series.Type)
	}
}

func TestParseFindResults_LegacyTitleYearNotMistakenForRelease(t *testing.T) {
	html := testutil.GenerateLegacyFindHTML([]testutil.LegacyFindResultOptions{
		{ID: "tt0062622", Title: "2001: A Space Odyssey", Rest: "(1968)"},
	})

	candidates, _, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Year != "1968" {
		t.Errorf("Expected year 1968, got %q", candidates[0].Year)
	}
}

func TestParseFindResults_ModernLayout(t *testing.T) {
	html := testutil.GenerateModernFindHTML([]testutil.ModernFindResultOptions{
		{ID: "tt0120586", Title: "American History X", Labels: []string{"1998", "Edward Norton, Edward Furlong"}},
		{ID: "tt1190634", Title: "The Boys", Labels: []string{"2019– ", "TV Series", "Karl Urban, Jack Quaid"}},
	})

	candidates, layout, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if layout != "modern" {
		t.Errorf("Expected layout modern, got %q", layout)
	}
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}

	first := candidates[0]
	if first.ID != "tt0120586" {
		t.Errorf("Expected ID tt0120586, got %s", first.ID)
	}
	if first.Title != "American History X" {
		t.Errorf("Expected aria-label prefix stripped, got %q", first.Title)
	}
	if first.Year != "1998" {
		t.Errorf("Expected year 1998, got %q", first.Year)
	}

	series := candidates[1]
	if series.Year != "2019" {
		t.Errorf("Expected year 2019, got %q", series.Year)
	}
	if series.Type != models.TitleTypeTVSeries {
		t.Errorf("Expected TV Series type hint, got %v", series.Type)
	}
	if !strings.Contains(series.Text, "Karl Urban") {
		t.Errorf("Expected label text preserved, got %q", series.Text)
	}
}

func TestParseFindResults_ModernLayoutWithoutAriaLabel(t *testing.T) {
	html := `<html><body><ul>
<li class="ipc-metadata-list-summary-item">
<a class="ipc-metadata-list-summary-item__t" href="/title/tt0133093/">The Matrix</a>
<span class="ipc-metadata-list-summary-item__li">1999</span>
</li>
</ul></body></html>`

	candidates, _, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Title != "The Matrix" {
		t.Errorf("Expected title from link text, got %q", candidates[0].Title)
	}
}

func TestParseFindResults_DeduplicatesAcrossLayouts(t *testing.T) {
	html := `<html><body>
<table><tr><td class="result_text"><a href="/title/tt0133093/">The Matrix</a> (1999)</td></tr></table>
<ul><li class="ipc-metadata-list-summary-item">
<a class="ipc-metadata-list-summary-item__t" aria-label="View title page for The Matrix" href="/title/tt0133093/">The Matrix</a>
<span class="ipc-metadata-list-summary-item__li">1999</span>
</li></ul>
</body></html>`

	candidates, layout, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate after deduplication, got %d", len(candidates))
	}
	if layout != "legacy" {
		t.Errorf("Expected layout legacy, got %q", layout)
	}
	if candidates[0].Text != "The Matrix (1999)" {
		t.Errorf("Expected legacy occurrence to win, got text %q", candidates[0].Text)
	}
}

func TestParseFindResults_SkipsRowsWithoutTitleLink(t *testing.T) {
	html := `<html><body><table>
<tr><td class="result_text">No link here (1999)</td></tr>
<tr><td class="result_text"><a href="/name/nm0000206/">Keanu Reeves</a></td></tr>
<tr><td class="result_text"><a href="/title/tt0133093/">The Matrix</a> (1999)</td></tr>
</table></body></html>`

	candidates, _, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].ID != "tt0133093" {
		t.Errorf("Expected ID tt0133093, got %s", candidates[0].ID)
	}
}

func TestParseFindResults_EmptyPage(t *testing.T) {
	html := `<html><body><div class="findNoResults">No results found for "xyzzy"</div></body></html>`

	candidates, layout, err := parseFindResults(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(candidates))
	}
	if layout != "empty" {
		t.Errorf("Expected layout empty, got %q", layout)
	}
}

func TestTypeHintFromText(t *testing.T) {
	tests := []struct {
		text string
		want models.TitleType
	}{
		{"(1998)", models.TitleTypeUnknown},
		{"(2005) (TV Series)", models.TitleTypeTVSeries},
		{"(2010) (TV Mini-Series)", models.TitleTypeTVMiniSeries},
		{"(2019) (TV Episode)", models.TitleTypeTVEpisode},
		{"(2002) (TV Movie)", models.TitleTypeTVMovie},
		{"(2012) (Video Game)", models.TitleTypeVideoGame},
		{"(2015) (Video)", models.TitleTypeVideo},
		{"(2011) (TV Short)", models.TitleTypeTVShort},
		{"(2009) (Short)", models.TitleTypeShort},
		{"(2021) (Music Video)", models.TitleTypeMusicVideo},
		{"(2023) (Podcast Series)", models.TitleTypePodcastSeries},
	}

	for _, tt := range tests {
		got := typeHintFromText(tt.text)
		if got != tt.want {
			t.Errorf("typeHintFromText(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}
