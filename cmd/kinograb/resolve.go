package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/csfd"
	"github.com/steelspace/kinograb/internal/imdb"
	"github.com/steelspace/kinograb/internal/merge"
	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/resolver"
	"github.com/steelspace/kinograb/internal/store"
	"github.com/steelspace/kinograb/internal/text"
	"github.com/steelspace/kinograb/internal/tmdb"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <csfd-id>...",
		Short: "Scrape, resolve and enrich films by their ČSFD ids",
		Long: `Resolve runs the full pipeline for each id: scrape the seed record, find
and validate the IMDb identity, fetch the TMDB supplement, merge everything
into one document and store it. The merged document of every successful film
is printed as JSON. A film that fails is logged and skipped; the rest of the
batch keeps going.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid film id %q", arg)
				}
				ids = append(ids, id)
			}
			return runResolve(cmd, ids)
		},
	}
}

func runResolve(cmd *cobra.Command, ids []int64) error {
	cfg := config.GetConfig()
	logger := config.GetLogger()
	ctx := cmd.Context()

	stopMetrics := startMetricsServer(cfg)
	defer stopMetrics()

	catalog, err := imdb.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("create catalog client: %w", err)
	}
	defer catalog.Close()

	seeds := csfd.NewClient(cfg)
	res := resolver.New(catalog, cfg)

	var supplement tmdb.Client
	if cfg.TMDB.APIKey != "" {
		supplement = tmdb.NewClient(cfg)
	} else {
		logger.Info().Msg("No TMDB API key configured, documents will be seed-only")
	}

	films, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer films.Close()

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	var failed int
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}

		merged, err := resolveOne(ctx, id, seeds, res, supplement)
		if err != nil {
			logger.Error().Err(err).Int64("csfd_id", id).Msg("Failed to process film")
			failed++
			continue
		}
		if err := films.Put(ctx, merged); err != nil {
			logger.Error().Err(err).Int64("csfd_id", id).Msg("Failed to store film")
			failed++
			continue
		}
		if err := encoder.Encode(merged); err != nil {
			return fmt.Errorf("encode film %d: %w", id, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d films failed", failed, len(ids))
	}
	return nil
}

// resolveOne runs the pipeline for a single film: seed scrape, catalog
// resolution, supplemental lookup, merge.
func resolveOne(ctx context.Context, id int64, seeds csfd.Client, res *resolver.Resolver, supplement tmdb.Client) (models.MergedFilm, error) {
	film, doc, err := seeds.Film(ctx, id)
	if err != nil {
		return models.MergedFilm{}, err
	}

	resolution, err := res.Resolve(ctx, film, doc)
	if err != nil {
		return models.MergedFilm{}, err
	}

	movie := lookupSupplement(ctx, film, supplement)
	return merge.Merge(film, resolution, movie), nil
}

// lookupSupplement finds the film on the supplemental source. Every failure
// here degrades to a seed-only document, never to a failed film.
func lookupSupplement(ctx context.Context, film *models.Film, supplement tmdb.Client) *tmdb.Movie {
	if supplement == nil {
		return nil
	}
	logger := config.GetLogger()

	query := film.OriginalTitle
	if query == "" {
		query = film.Title
	}

	results, err := supplement.SearchMovie(ctx, query, text.ExtractYear(film.Year))
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("Supplemental search failed")
		return nil
	}
	if len(results) == 0 {
		logger.Debug().Str("query", query).Msg("No supplemental match")
		return nil
	}

	movie, err := supplement.MovieDetails(ctx, results[0].ID)
	if err != nil {
		logger.Warn().Err(err).Int64("tmdb_id", results[0].ID).Msg("Supplemental details fetch failed")
		return nil
	}
	return movie
}
