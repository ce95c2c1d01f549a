// Package imdb implements the IMDb side of identity resolution: searching
// the find page for title candidates and fetching title detail pages for
// metadata. The catalog soft-blocks clients it does not like, so the package
// hides a fair amount of plumbing behind its interface: browser
// impersonation with rotating user agents, randomized politeness delays, a
// cookie session, a single retry on soft-block responses and a page cache
// that keeps repeated lookups off the network entirely.
package imdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/rs/zerolog"

	"github.com/steelspace/kinograb/internal/apperrors"
	"github.com/steelspace/kinograb/internal/cache"
	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/httpx"
	"github.com/steelspace/kinograb/internal/metrics"
	"github.com/steelspace/kinograb/internal/models"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultDelayMin      = 1 * time.Second
	defaultDelayMax      = 3 * time.Second
	defaultSoftBlockWait = 2 * time.Second
	defaultCacheTTL      = 24 * time.Hour
)

// Client defines the interface for querying the IMDb catalog.
type Client interface {
	// Search runs a find query and returns the candidates in page order.
	// A known titleType narrows the search to entries of that kind.
	Search(ctx context.Context, query string, titleType models.TitleType) ([]models.Candidate, error)

	// TitleMetadata fetches the detail page of a title by its tt identifier
	// and extracts the metadata snapshot used for validation.
	TitleMetadata(ctx context.Context, id string) (*models.TitleMetadata, error)

	// Close releases the page cache held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	retry      failsafe.Executor[*http.Response]
	baseURL    string
	pages      cache.Cache
}

// cacheLogger adapts zerolog to the cache package's Logger interface.
type cacheLogger struct {
	log zerolog.Logger
}

func (l cacheLogger) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}

// NewClient creates an IMDb client from the application configuration.
func NewClient(cfg *config.Config) (Client, error) {
	timeout := config.DurationOr(cfg.ClientTimeout, defaultTimeout)
	delayMin := config.DurationOr(cfg.Search.DelayMin, defaultDelayMin)
	delayMax := config.DurationOr(cfg.Search.DelayMax, defaultDelayMax)
	softBlockWait := config.DurationOr(cfg.Search.SoftBlockWait, defaultSoftBlockWait)

	transport := httpx.NewBrowserTransport(
		httpx.NewCompressionTransport(http.DefaultTransport.(*http.Transport).Clone()),
		cfg.UserAgents,
		delayMin,
		delayMax,
	)

	// The retry sits above the cookie jar, so the attempt after a soft
	// block carries the cookies the blocking response handed out.
	retry := retrypolicy.Builder[*http.Response]().
		HandleIf(func(resp *http.Response, _ error) bool {
			return resp != nil && resp.StatusCode == http.StatusAccepted
		}).
		WithDelay(softBlockWait).
		WithMaxRetries(1).
		ReturnLastFailure().
		Build()

	pages, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           config.DurationOr(cfg.Cache.TTL, defaultCacheTTL),
		Logger:        cacheLogger{config.GetLogger()},
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         "imdb_pages",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			Jar:       httpx.NewCookieJar(),
		},
		retry:   failsafe.NewExecutor[*http.Response](retry),
		baseURL: cfg.IMDBBaseURL,
		pages:   pages,
	}, nil
}

func (c *client) Search(ctx context.Context, query string, titleType models.TitleType) ([]models.Candidate, error) {
	logger := config.GetLogger()

	searchURL := fmt.Sprintf("%s/find/?q=%s%s", c.baseURL, url.QueryEscape(query), searchFilter(titleType))
	logger.Info().Str("query", query).Msg("Searching catalog")

	body, err := c.page(ctx, searchURL, c.baseURL+"/")
	if err != nil {
		return nil, err
	}

	candidates, layout, err := parseFindResults(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	metrics.IMDBSearchesTotal.WithLabelValues(layout).Inc()

	logger.Info().
		Str("query", query).
		Str("layout", layout).
		Int("candidates", len(candidates)).
		Msg("Search completed")
	return candidates, nil
}

func (c *client) TitleMetadata(ctx context.Context, id string) (*models.TitleMetadata, error) {
	titleURL := fmt.Sprintf("%s/title/%s/", c.baseURL, id)

	body, err := c.page(ctx, titleURL, c.baseURL+"/")
	if err != nil {
		return nil, err
	}

	meta, err := parseTitleMetadata(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("id", id).
		Str("year", meta.Year).
		Str("type", meta.Type.String()).
		Float64("rating", meta.Rating).
		Msg("Extracted title metadata")
	return meta, nil
}

func (c *client) Close() error {
	return c.pages.Close()
}

// searchFilter returns the find-page query fragment narrowing results to the
// given kind of entry, or an empty string when no filter applies.
func searchFilter(t models.TitleType) string {
	switch t {
	case models.TitleTypeMovie:
		return "&s=tt&ttype=ft"
	case models.TitleTypeTVSeries, models.TitleTypeTVMiniSeries:
		return "&s=tt&ttype=tv"
	case models.TitleTypeTVEpisode:
		return "&s=tt&ttype=ep"
	case models.TitleTypeVideoGame:
		return "&s=tt&ttype=vg"
	default:
		return ""
	}
}

// page returns the body of a catalog page, serving repeated fetches from the
// cache so politeness delays only apply to real requests.
func (c *client) page(ctx context.Context, pageURL, referer string) ([]byte, error) {
	if body, ok := c.pages.Get(pageURL); ok {
		logger := config.GetLogger()
		logger.Debug().Str("url", pageURL).Msg("Serving page from cache")
		return body, nil
	}

	resp, err := c.get(ctx, pageURL, referer)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	if resp.StatusCode == http.StatusAccepted {
		metrics.IMDBSoftBlocksTotal.Inc()
		return nil, apperrors.NewSoftBlockedError(pageURL)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, apperrors.NewUnexpectedStatusError(pageURL, resp.StatusCode)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read page body: %w", err)
	}

	c.pages.Set(pageURL, body)
	return body, nil
}

// get issues the request through the soft-block retry policy. Every attempt
// goes through the client's cookie jar, so the retry after a 202 response
// sends back the session cookies that response set.
func (c *client) get(ctx context.Context, pageURL, referer string) (*http.Response, error) {
	return c.retry.WithContext(ctx).Get(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}
		if referer != "" {
			req.Header.Set("Referer", referer)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusAccepted {
			// Soft-block responses carry no useful body; close it now so
			// the retry does not leak the connection.
			resp.Body.Close()
			logger := config.GetLogger()
			logger.Warn().Str("url", pageURL).Msg("Catalog soft block (202), retrying once")
		}
		return resp, nil
	})
}
