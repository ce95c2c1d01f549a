// Package tmdb is the supplemental catalog client. It wraps the JSON API
// endpoints the enrichment flow consumes: movie search and movie details
// with videos and credits attached.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/steelspace/kinograb/internal/apperrors"
	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/models"
)

const defaultTimeout = 30 * time.Second

// Client defines the interface for querying the supplemental catalog.
type Client interface {
	// SearchMovie returns search results for the query, optionally narrowed
	// by release year.
	SearchMovie(ctx context.Context, query, year string) ([]SearchResult, error)

	// MovieDetails fetches one movie with its videos and credits.
	MovieDetails(ctx context.Context, id int64) (*Movie, error)
}

// SearchResult is one row of a movie search response.
type SearchResult struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	VoteCount     int    `json:"vote_count"`
}

// Movie is the detail record with image paths joined into full URLs and the
// trailer already picked out of the video list.
type Movie struct {
	ID               int64
	Title            string
	OriginalTitle    string
	Overview         string
	ReleaseDate      string
	PosterURL        string
	BackdropURL      string
	VoteAverage      float64
	VoteCount        int
	Popularity       float64
	OriginalLanguage string
	Adult            bool
	Homepage         string
	TrailerURL       string
	Crew             []models.CrewMember
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
	imageBase  string
	apiKey     string
}

// NewClient creates a supplemental catalog client from the application
// configuration.
func NewClient(cfg *config.Config) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: config.DurationOr(cfg.ClientTimeout, defaultTimeout),
		},
		baseURL:   cfg.TMDB.BaseURL,
		imageBase: cfg.TMDB.ImageBaseURL,
		apiKey:    cfg.TMDB.APIKey,
	}
}

func (c *client) SearchMovie(ctx context.Context, query, year string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	if year != "" {
		params.Set("year", year)
	}

	var page struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/search/movie", params, &page); err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("query", query).
		Str("year", year).
		Int("results", len(page.Results)).
		Msg("Searched supplemental catalog")
	return page.Results, nil
}

func (c *client) MovieDetails(ctx context.Context, id int64) (*Movie, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("append_to_response", "videos,credits")

	var payload moviePayload
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", id), params, &payload); err != nil {
		return nil, err
	}

	movie := &Movie{
		ID:               payload.ID,
		Title:            payload.Title,
		OriginalTitle:    payload.OriginalTitle,
		Overview:         payload.Overview,
		ReleaseDate:      payload.ReleaseDate,
		PosterURL:        c.imageURL(payload.PosterPath),
		BackdropURL:      c.imageURL(payload.BackdropPath),
		VoteAverage:      payload.VoteAverage,
		VoteCount:        payload.VoteCount,
		Popularity:       payload.Popularity,
		OriginalLanguage: payload.OriginalLanguage,
		Adult:            payload.Adult,
		Homepage:         payload.Homepage,
		TrailerURL:       trailerURL(payload.Videos.Results),
	}
	for _, credit := range payload.Credits.Crew {
		movie.Crew = append(movie.Crew, models.CrewMember{Name: credit.Name, Job: credit.Job, Department: credit.Department})
	}

	logger := config.GetLogger()
	logger.Debug().
		Int64("id", id).
		Str("title", movie.Title).
		Int("crew", len(movie.Crew)).
		Msg("Fetched movie details")
	return movie, nil
}

// moviePayload is the raw API shape of a movie detail response.
type moviePayload struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
	Homepage         string  `json:"homepage"`
	Videos           struct {
		Results []video `json:"results"`
	} `json:"videos"`
	Credits struct {
		Crew []crewCredit `json:"crew"`
	} `json:"credits"`
}

type video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type crewCredit struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// getJSON performs a GET against the API and decodes the JSON response. The
// error for a non-200 status names the endpoint without the query string, so
// the API key never ends up in logs.
func (c *client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call supplemental catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewUnexpectedStatusError(c.baseURL+path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// imageURL joins a path fragment with the configured image base URL.
func (c *client) imageURL(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(c.imageBase, "/") + path
}

// trailerURL picks the first YouTube trailer out of the video list.
func trailerURL(videos []video) string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}
