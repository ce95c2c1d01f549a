package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/metrics"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kinograb",
		Short: "Cross-catalog film identity resolution",
		Long: `Kinograb takes ČSFD film ids, resolves each film's IMDb identity through
layout-tolerant searching and year/director validation, enriches the record
from TMDB and stores the merged document locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newRefreshRatingsCommand())

	return rootCmd
}

// startMetricsServer exposes the Prometheus endpoint for the duration of a
// command when metrics are enabled. The returned stop function is always
// safe to call.
func startMetricsServer(cfg *config.Config) func() {
	if !cfg.Metrics.Enabled {
		return func() {}
	}

	logger := config.GetLogger()
	server := metrics.NewHTTPServer(cfg.Metrics.Address, cfg.Metrics.Port)
	go func() {
		logger.Info().Str("address", server.Addr).Msg("Starting Prometheus metrics HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Failed to serve metrics")
		}
	}()
	return func() {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}
}
