package resolver

import (
	"reflect"
	"testing"

	"github.com/steelspace/kinograb/internal/models"
)

func TestCandidateTitles_EnglishLocaleFirst(t *testing.T) {
	film := &models.Film{
		Title:  "Krysař",
		Titles: map[string]string{"USA": "The Pied Piper"},
	}

	got := CandidateTitles(film)
	want := []string{"The Pied Piper", "Krysař"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCandidateTitles_OriginTitlesLeadWhenNoEnglish(t *testing.T) {
	film := &models.Film{
		Title:  "Trouba",
		Origin: "Francie / Itálie",
		Titles: map[string]string{
			"Francie": "Le Corniaud",
			"Itálie":  "Il Corniaud",
		},
	}

	got := CandidateTitles(film)
	// The second origin country is prepended after the first, so it leads.
	want := []string{"Il Corniaud", "Le Corniaud", "Trouba"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCandidateTitles_FullOrdering(t *testing.T) {
	film := &models.Film{
		Title:  "Mesto tmy",
		Origin: "USA / Velká Británie",
		Titles: map[string]string{
			"USA":            "Dark City",
			"Velká Británie": "City of Darkness",
			"Německo":        "Stadt der Finsternis",
		},
	}

	got := CandidateTitles(film)
	want := []string{"Dark City", "City of Darkness", "Mesto tmy", "Stadt der Finsternis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCandidateTitles_PrimaryOnly(t *testing.T) {
	film := &models.Film{Title: "Krysař"}

	got := CandidateTitles(film)
	want := []string{"Krysař"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCandidateTitles_RomanizedVariantAppended(t *testing.T) {
	film := &models.Film{
		Title:  "Šógun",
		Titles: map[string]string{"USA": "Shogun"},
	}

	got := CandidateTitles(film)
	want := []string{"Shogun", "Šógun", "Shōgun"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCandidateTitles_DuplicatesAndEmptiesDropped(t *testing.T) {
	film := &models.Film{
		Title: "THE SEVEN",
		Titles: map[string]string{
			"USA":       "The Seven",
			"Slovensko": "  ",
		},
	}

	got := CandidateTitles(film)
	want := []string{"The Seven"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
