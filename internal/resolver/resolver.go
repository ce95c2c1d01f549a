// Package resolver matches a scraped film record against the external
// catalog. It generates prioritized search queries from the film's titles,
// searches the catalog, partitions each result list into likely and
// long-shot candidates, and validates candidates one by one against the
// film's year and directors until one is accepted. Finding nothing is a
// normal outcome; the zero Resolution says so.
package resolver

import (
	"context"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/metrics"
	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/text"
)

// Catalog is the slice of the external catalog client the resolver consumes.
type Catalog interface {
	Search(ctx context.Context, query string, titleType models.TitleType) ([]models.Candidate, error)
	TitleMetadata(ctx context.Context, id string) (*models.TitleMetadata, error)
}

// SourceDocument exposes the direct catalog link some source pages carry.
type SourceDocument interface {
	IMDBID() string
}

// Resolver drives the search-and-validate loop against a catalog.
type Resolver struct {
	catalog             Catalog
	validateTolerance   int
	prioritizeTolerance int
}

// New builds a resolver on top of the given catalog, with year tolerances
// from configuration.
func New(catalog Catalog, cfg *config.Config) *Resolver {
	return &Resolver{
		catalog:             catalog,
		validateTolerance:   cfg.Resolver.YearToleranceValidate,
		prioritizeTolerance: cfg.Resolver.YearTolerancePrioritize,
	}
}

// Resolve finds the catalog identity of a film. When the source document
// links the catalog entry directly, that link is validated before any
// searching happens; a stale or wrong link falls through to the search loop.
// The returned zero Resolution means no candidate was accepted, which is not
// an error. Resolve only errors when the context is cancelled.
func (r *Resolver) Resolve(ctx context.Context, film *models.Film, doc SourceDocument) (models.Resolution, error) {
	log := config.GetLogger()

	if doc != nil {
		if id := doc.IMDBID(); id != "" {
			if ok, meta := r.validate(ctx, id, film, ""); ok {
				log.Info().Int64("csfd_id", film.CSFDID).Str("imdb_id", id).Msg("Resolved film through direct link")
				metrics.ResolutionsTotal.WithLabelValues("matched").Inc()
				return resolutionFrom(id, meta), nil
			}
			log.Debug().Int64("csfd_id", film.CSFDID).Str("imdb_id", id).Msg("Direct link did not validate, falling back to search")
		}
	}

	for _, query := range CandidateTitles(film) {
		if err := ctx.Err(); err != nil {
			metrics.ResolutionsTotal.WithLabelValues("error").Inc()
			return models.Resolution{}, err
		}

		candidates, err := r.catalog.Search(ctx, query, models.TitleTypeUnknown)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("Catalog search failed, trying next title")
			continue
		}

		prioritized, secondary := r.partition(film, query, candidates)
		for _, candidate := range append(prioritized, secondary...) {
			if err := ctx.Err(); err != nil {
				metrics.ResolutionsTotal.WithLabelValues("error").Inc()
				return models.Resolution{}, err
			}
			if ok, meta := r.validate(ctx, candidate.ID, film, candidate.Year); ok {
				log.Info().Int64("csfd_id", film.CSFDID).Str("imdb_id", candidate.ID).Str("query", query).Msg("Resolved film through search")
				metrics.ResolutionsTotal.WithLabelValues("matched").Inc()
				return resolutionFrom(candidate.ID, meta), nil
			}
		}
	}

	log.Info().Int64("csfd_id", film.CSFDID).Str("title", film.Title).Msg("No catalog match found")
	metrics.ResolutionsTotal.WithLabelValues("unmatched").Inc()
	return models.Resolution{}, nil
}

// RefreshRating re-reads the rating of an already resolved title. An empty
// seed disables the year and director checks, so only the type gate can
// reject here, and only a vanished or fetch-failed page yields no resolution.
func (r *Resolver) RefreshRating(ctx context.Context, id string) (models.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return models.Resolution{}, err
	}
	if ok, meta := r.validate(ctx, id, &models.Film{}, ""); ok {
		return resolutionFrom(id, meta), nil
	}
	return models.Resolution{}, nil
}

// partition splits search results into candidates worth a detail-page fetch
// and the long shots. Results whose layout already revealed a rejected title
// type are dropped outright. A result whose normalized title matches the
// film's own titles is prioritized; otherwise one sharing the film's year is
// kept as secondary. The rest never get fetched, which is what keeps the
// number of detail-page fetches per film small.
func (r *Resolver) partition(film *models.Film, query string, candidates []models.Candidate) (prioritized, secondary []models.Candidate) {
	accepted := acceptanceSet(film, query)

	for _, candidate := range candidates {
		if candidate.Type.Rejected() {
			continue
		}
		if accepted[text.NormalizeTitle(candidate.Title)] {
			prioritized = append(prioritized, candidate)
			continue
		}
		if r.sharesSeedYear(film, candidate) {
			secondary = append(secondary, candidate)
		}
	}
	return prioritized, secondary
}

// sharesSeedYear reports whether a search result's listed years come close
// enough to the film's year to earn a long-shot validation. Without a seed
// year there is nothing to compare and the result stays out.
func (r *Resolver) sharesSeedYear(film *models.Film, candidate models.Candidate) bool {
	if film.Year == "" {
		return false
	}
	if candidate.Year != "" {
		return text.YearsMatch(film.Year, candidate.Year, r.prioritizeTolerance)
	}
	for _, year := range text.AllYears(candidate.Text) {
		if text.YearsMatch(film.Year, year, r.prioritizeTolerance) {
			return true
		}
	}
	return false
}

func resolutionFrom(id string, meta *models.TitleMetadata) models.Resolution {
	return models.Resolution{
		IMDBID: id,
		Rating: meta.Rating,
		Votes:  meta.Votes,
	}
}
