// Package csfd scrapes seed film records from the Czech film database.
// One film page yields the models.Film seed plus the parsed document, which
// resolution inspects for a directly embedded IMDb link.
package csfd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/steelspace/kinograb/internal/apperrors"
	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/httpx"
	"github.com/steelspace/kinograb/internal/models"
)

const defaultTimeout = 30 * time.Second

// Client defines the interface for fetching seed film records.
type Client interface {
	// Film fetches and parses the film page with the given identifier.
	Film(ctx context.Context, filmID int64) (*models.Film, *Document, error)
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a seed catalog client from the application configuration.
func NewClient(cfg *config.Config) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: config.DurationOr(cfg.ClientTimeout, defaultTimeout),
			// No politeness delay here: one page per film, not a search burst.
			Transport: httpx.NewBrowserTransport(
				httpx.NewCompressionTransport(http.DefaultTransport.(*http.Transport).Clone()),
				cfg.UserAgents,
				0, 0,
			),
			Jar: httpx.NewCookieJar(),
		},
		baseURL: cfg.CSFDBaseURL,
	}
}

func (c *client) Film(ctx context.Context, filmID int64) (*models.Film, *Document, error) {
	logger := config.GetLogger()

	filmURL := fmt.Sprintf("%s/film/%d/", c.baseURL, filmID)
	logger.Info().Int64("film_id", filmID).Msg("Fetching seed film page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, filmURL, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch film page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil, apperrors.NewFilmNotFoundError(filmID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, apperrors.NewUnexpectedStatusError(filmURL, resp.StatusCode)
	}

	// Older pages are served as windows-1250; decode by the declared charset.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode film page: %w", err)
	}

	doc, err := NewDocument(reader)
	if err != nil {
		return nil, nil, err
	}

	film, err := doc.Film()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse film %d: %w", filmID, err)
	}
	film.CSFDID = filmID

	logger.Info().
		Int64("film_id", filmID).
		Str("title", film.Title).
		Str("year", film.Year).
		Msg("Parsed seed film")
	return film, doc, nil
}
