package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/models"
)

// fakeCatalog is a scripted catalog: canned results per query, canned
// metadata per id, with every call recorded in order.
type fakeCatalog struct {
	results   map[string][]models.Candidate
	searchErr map[string]error
	pages     map[string]*models.TitleMetadata
	pageErr   map[string]error

	searches []string
	types    []models.TitleType
	fetched  []string
}

func (f *fakeCatalog) Search(_ context.Context, query string, titleType models.TitleType) ([]models.Candidate, error) {
	f.searches = append(f.searches, query)
	f.types = append(f.types, titleType)
	if err := f.searchErr[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func (f *fakeCatalog) TitleMetadata(_ context.Context, id string) (*models.TitleMetadata, error) {
	f.fetched = append(f.fetched, id)
	if err := f.pageErr[id]; err != nil {
		return nil, err
	}
	if meta, ok := f.pages[id]; ok {
		return meta, nil
	}
	return nil, errors.New("no page scripted for " + id)
}

type fakeDoc struct {
	id string
}

func (d fakeDoc) IMDBID() string { return d.id }

func newTestResolver(catalog Catalog) *Resolver {
	cfg := &config.Config{}
	cfg.Resolver.YearToleranceValidate = 1
	cfg.Resolver.YearTolerancePrioritize = 2
	return New(catalog, cfg)
}

func TestResolveDirectLink(t *testing.T) {
	catalog := &fakeCatalog{
		pages: map[string]*models.TitleMetadata{
			"tt0120586": {Year: "1998", Directors: []string{"Tony Kaye"}, Rating: 8.5, Votes: 1000000, Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{CSFDID: 9499, Title: "Americká historie X", Year: "1998", Directors: []string{"Tony Kaye"}}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, fakeDoc{id: "tt0120586"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0120586" {
		t.Errorf("Expected tt0120586, got %q", res.IMDBID)
	}
	if res.Rating != 8.5 || res.Votes != 1000000 {
		t.Errorf("Expected rating 8.5 with 1000000 votes, got %v/%d", res.Rating, res.Votes)
	}
	if len(catalog.searches) != 0 {
		t.Errorf("Expected no searches for a valid direct link, got %v", catalog.searches)
	}
}

func TestResolveDirectLinkInvalidFallsBackToSearch(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {{ID: "tt0118929", Title: "Dark City", Year: "1998"}},
		},
		pages: map[string]*models.TitleMetadata{
			"tt0000001": {Year: "1950", Type: models.TitleTypeMovie},
			"tt0118929": {Year: "1998", Type: models.TitleTypeMovie, Rating: 7.6, Votes: 200000},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, fakeDoc{id: "tt0000001"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0118929" {
		t.Errorf("Expected tt0118929 from search, got %q", res.IMDBID)
	}
	wantFetched := []string{"tt0000001", "tt0118929"}
	if len(catalog.fetched) != 2 || catalog.fetched[0] != wantFetched[0] || catalog.fetched[1] != wantFetched[1] {
		t.Errorf("Expected fetches %v, got %v", wantFetched, catalog.fetched)
	}
}

func TestResolveSearchesWithoutTypeFilter(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {{ID: "tt0118929", Title: "Dark City", Year: "1998"}},
		},
		pages: map[string]*models.TitleMetadata{
			"tt0118929": {Year: "1998", Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	if _, err := newTestResolver(catalog).Resolve(context.Background(), film, nil); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(catalog.types) != 1 || catalog.types[0] != models.TitleTypeUnknown {
		t.Errorf("Expected search without a type filter, got %v", catalog.types)
	}
}

func TestResolvePrioritizesTitleMatches(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {
				{ID: "tt0000002", Title: "Dark Town", Year: "1998"},
				{ID: "tt0118929", Title: "Dark City", Year: "1998"},
			},
		},
		pages: map[string]*models.TitleMetadata{
			"tt0000002": {Year: "1998", Type: models.TitleTypeMovie},
			"tt0118929": {Year: "1998", Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0118929" {
		t.Errorf("Expected the title match to win, got %q", res.IMDBID)
	}
	// The title match validates first and wins, so the year-only candidate
	// never costs a page fetch.
	if len(catalog.fetched) != 1 || catalog.fetched[0] != "tt0118929" {
		t.Errorf("Expected a single fetch of tt0118929, got %v", catalog.fetched)
	}
}

func TestResolveSkipsRejectedTypeHints(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {
				{ID: "tt0000003", Title: "Dark City", Year: "1998", Type: models.TitleTypeVideoGame},
				{ID: "tt0118929", Title: "Dark City", Year: "1998", Type: models.TitleTypeMovie},
			},
		},
		pages: map[string]*models.TitleMetadata{
			"tt0118929": {Year: "1998", Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0118929" {
		t.Errorf("Expected tt0118929, got %q", res.IMDBID)
	}
	for _, id := range catalog.fetched {
		if id == "tt0000003" {
			t.Error("Expected the video game hit to be dropped before any fetch")
		}
	}
}

func TestResolveSecondaryYearFromListingText(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {
				{ID: "tt0000004", Title: "City of Shadows", Text: "City of Shadows (1997) crime drama"},
			},
		},
		pages: map[string]*models.TitleMetadata{
			"tt0000004": {Year: "1998", Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0000004" {
		t.Errorf("Expected the year-adjacent candidate to validate, got %q", res.IMDBID)
	}
}

func TestResolveDropsUnrelatedCandidates(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {
				{ID: "tt0000005", Title: "Something Else", Year: "1950"},
			},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Resolved() {
		t.Errorf("Expected no resolution, got %q", res.IMDBID)
	}
	if len(catalog.fetched) != 0 {
		t.Errorf("Expected no fetches for an unrelated result, got %v", catalog.fetched)
	}
}

func TestResolveSearchErrorContinuesToNextTitle(t *testing.T) {
	catalog := &fakeCatalog{
		searchErr: map[string]error{
			"The Pied Piper": errors.New("soft blocked"),
		},
		results: map[string][]models.Candidate{
			"Krysař": {{ID: "tt0089931", Title: "Krysař", Year: "1985"}},
		},
		pages: map[string]*models.TitleMetadata{
			"tt0089931": {Year: "1985", Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{Title: "Krysař", Year: "1985", Titles: map[string]string{"USA": "The Pied Piper"}}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0089931" {
		t.Errorf("Expected tt0089931 from the second query, got %q", res.IMDBID)
	}
	if len(catalog.searches) != 2 || catalog.searches[0] != "The Pied Piper" || catalog.searches[1] != "Krysař" {
		t.Errorf("Expected both queries tried in order, got %v", catalog.searches)
	}
}

func TestResolveMetadataFailureSkipsCandidate(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]models.Candidate{
			"Dark City": {
				{ID: "tt0000006", Title: "Dark City", Year: "1998"},
				{ID: "tt0118929", Title: "Dark City", Year: "1998"},
			},
		},
		pageErr: map[string]error{
			"tt0000006": errors.New("fetch failed"),
		},
		pages: map[string]*models.TitleMetadata{
			"tt0118929": {Year: "1998", Type: models.TitleTypeMovie},
		},
	}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.IMDBID != "tt0118929" {
		t.Errorf("Expected the next candidate after a failed fetch, got %q", res.IMDBID)
	}
}

func TestResolveNoMatch(t *testing.T) {
	catalog := &fakeCatalog{}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(context.Background(), film, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Resolved() {
		t.Errorf("Expected the zero resolution, got %+v", res)
	}
}

func TestResolveContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	catalog := &fakeCatalog{}
	film := &models.Film{Title: "Dark City", Year: "1998"}

	res, err := newTestResolver(catalog).Resolve(ctx, film, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if res.Resolved() {
		t.Errorf("Expected the zero resolution, got %+v", res)
	}
	if len(catalog.searches) != 0 {
		t.Errorf("Expected no searches after cancellation, got %v", catalog.searches)
	}
}

func TestRefreshRating(t *testing.T) {
	catalog := &fakeCatalog{
		pages: map[string]*models.TitleMetadata{
			"tt0120586": {Year: "1998", Rating: 8.5, Votes: 1100000, Type: models.TitleTypeMovie},
		},
	}

	res, err := newTestResolver(catalog).RefreshRating(context.Background(), "tt0120586")
	if err != nil {
		t.Fatalf("RefreshRating failed: %v", err)
	}
	if res.IMDBID != "tt0120586" || res.Rating != 8.5 || res.Votes != 1100000 {
		t.Errorf("Expected refreshed rating 8.5/1100000, got %+v", res)
	}
}

func TestRefreshRatingFetchFailure(t *testing.T) {
	catalog := &fakeCatalog{
		pageErr: map[string]error{"tt0120586": errors.New("fetch failed")},
	}

	res, err := newTestResolver(catalog).RefreshRating(context.Background(), "tt0120586")
	if err != nil {
		t.Fatalf("RefreshRating failed: %v", err)
	}
	if res.Resolved() {
		t.Errorf("Expected the zero resolution, got %+v", res)
	}
}
