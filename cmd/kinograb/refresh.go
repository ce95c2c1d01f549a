package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/imdb"
	"github.com/steelspace/kinograb/internal/resolver"
	"github.com/steelspace/kinograb/internal/store"
)

func newRefreshRatingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-ratings",
		Short: "Re-read catalog ratings for every stored film",
		Long: `Refresh-ratings walks the stored collection and re-reads the IMDb rating
and vote count of every film that has a resolved identity. Films without one
are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefreshRatings(cmd)
		},
	}
}

func runRefreshRatings(cmd *cobra.Command) error {
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

	res := resolver.New(catalog, cfg)

	films, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer films.Close()

	stored, err := films.List(ctx)
	if err != nil {
		return fmt.Errorf("list films: %w", err)
	}

	var refreshed, failed int
	for _, film := range stored {
		if film.IMDBID == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		resolution, err := res.RefreshRating(ctx, film.IMDBID)
		if err != nil {
			return err
		}
		if !resolution.Resolved() {
			logger.Warn().Int64("csfd_id", film.CSFDID).Str("imdb_id", film.IMDBID).Msg("Rating refresh found nothing")
			failed++
			continue
		}

		if err := films.UpdateRating(ctx, film.CSFDID, resolution.Rating, resolution.Votes); err != nil {
			logger.Error().Err(err).Int64("csfd_id", film.CSFDID).Msg("Failed to update rating")
			failed++
			continue
		}
		refreshed++
		logger.Info().
			Int64("csfd_id", film.CSFDID).
			Str("imdb_id", film.IMDBID).
			Float64("rating", resolution.Rating).
			Int("votes", resolution.Votes).
			Msg("Rating refreshed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %d films, %d failed\n", refreshed, failed)
	return nil
}
