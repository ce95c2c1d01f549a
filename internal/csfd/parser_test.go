package csfd

import (
	"strings"
	"testing"

	"github.com/steelspace/kinograb/internal/testutil"
)

func TestDocumentFilm_FullPage(t *testing.T) {
	html := testutil.GenerateFilmPageHTML(testutil.FilmPageOptions{
		Title: "Americká historie X",
		Alternates: []testutil.AlternateTitleOptions{
			{Country: "USA", Title: "American History X"},
			{Country: "Slovensko", Title: "Americká história X", Info: "festivalový název"},
		},
		Genres:    []string{"Drama", "Krimi"},
		Origin:    "USA, 1998, 119 min",
		Directors: []string{"Tony Kaye"},
		Cast:      []string{"Edward Norton", "Edward Furlong"},
		Plot:      "Derek Vinyard je vůdčí osobností skinheadské skupiny.",
		PosterSrc: "//image.pmgstatic.com/files/images/film/posters/163/428/poster.jpg",
		Rating:    "87%",
	})

	doc, err := NewDocument(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	film, err := doc.Film()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if film.Title != "Americká historie X" {
		t.Errorf("Expected title 'Americká historie X', got %q", film.Title)
	}
	if film.OriginalTitle != "American History X" {
		t.Errorf("Expected original title from the origin country, got %q", film.OriginalTitle)
	}
	if film.Year != "1998" {
		t.Errorf("Expected year 1998, got %q", film.Year)
	}
	if film.Duration != 119 {
		t.Errorf("Expected duration 119, got %d", film.Duration)
	}
	if film.Origin != "USA" {
		t.Errorf("Expected origin USA, got %q", film.Origin)
	}
	if len(film.Genres) != 2 || film.Genres[0] != "Drama" || film.Genres[1] != "Krimi" {
		t.Errorf("Expected genres [Drama Krimi], got %v", film.Genres)
	}
	if len(film.Directors) != 1 || film.Directors[0] != "Tony Kaye" {
		t.Errorf("Expected director Tony Kaye, got %v", film.Directors)
	}
	if len(film.Cast) != 2 {
		t.Errorf("Expected 2 cast members, got %v", film.Cast)
	}
	if film.Titles["USA"] != "American History X" {
		t.Errorf("Expected USA title, got %q", film.Titles["USA"])
	}
	if film.Titles["Slovensko"] != "Americká história X" {
		t.Errorf("Expected annotation stripped from alternate title, got %q", film.Titles["Slovensko"])
	}
	if film.Description != "Derek Vinyard je vůdčí osobností skinheadské skupiny." {
		t.Errorf("Expected plot text, got %q", film.Description)
	}
	if film.PosterURL != "https://image.pmgstatic.com/files/images/film/posters/163/428/poster.jpg" {
		t.Errorf("Expected protocol-relative poster completed, got %q", film.PosterURL)
	}
	if film.Rating != 87 {
		t.Errorf("Expected rating 87, got %v", film.Rating)
	}
}

func TestDocumentFilm_OriginalTitleFallsBackToFirstAlternate(t *testing.T) {
	html := testutil.GenerateFilmPageHTML(testutil.FilmPageOptions{
		Title: "Kuky se vrací",
		Alternates: []testutil.AlternateTitleOptions{
			{Country: "USA", Title: "Kooky"},
			{Country: "Velká Británie", Title: "Kooky Returns"},
		},
		Origin: "Česko, 2010, 95 min",
	})

	doc, err := NewDocument(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	film, err := doc.Film()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if film.OriginalTitle != "Kooky" {
		t.Errorf("Expected first alternate as original title, got %q", film.OriginalTitle)
	}
}

func TestDocumentFilm_OriginVariants(t *testing.T) {
	tests := []struct {
		name         string
		origin       string
		wantOrigin   string
		wantYear     string
		wantDuration int
	}{
		{"countries year duration", "USA / Velká Británie, 1998, 119 min", "USA / Velká Británie", "1998", 119},
		{"no duration", "Francie, 2001", "Francie", "2001", 0},
		{"countries only", "Japonsko", "Japonsko", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := testutil.GenerateFilmPageHTML(testutil.FilmPageOptions{
				Title:  "Testovací film",
				Origin: tt.origin,
			})

			doc, err := NewDocument(strings.NewReader(html))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			film, err := doc.Film()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if film.Origin != tt.wantOrigin {
				t.Errorf("Expected origin %q, got %q", tt.wantOrigin, film.Origin)
			}
			if film.Year != tt.wantYear {
				t.Errorf("Expected year %q, got %q", tt.wantYear, film.Year)
			}
			if film.Duration != tt.wantDuration {
				t.Errorf("Expected duration %d, got %d", tt.wantDuration, film.Duration)
			}
		})
	}
}

func TestDocumentFilm_MissingTitleHeader(t *testing.T) {
	doc, err := NewDocument(strings.NewReader("<html><body><p>Stránka nenalezena</p></body></html>"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := doc.Film(); err == nil {
		t.Fatal("Expected an error for a page without a film header")
	}
}

func TestDocumentIMDBID(t *testing.T) {
	html := testutil.GenerateFilmPageHTML(testutil.FilmPageOptions{
		Title:    "Americká historie X",
		IMDBLink: "https://www.imdb.com/title/tt0120586/",
	})

	doc, err := NewDocument(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := doc.IMDBID(); got != "tt0120586" {
		t.Errorf("Expected tt0120586, got %q", got)
	}
}

func TestDocumentIMDBID_NoLink(t *testing.T) {
	html := testutil.GenerateFilmPageHTML(testutil.FilmPageOptions{
		Title: "Kuky se vrací",
	})

	doc, err := NewDocument(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := doc.IMDBID(); got != "" {
		t.Errorf("Expected no identifier, got %q", got)
	}
}
