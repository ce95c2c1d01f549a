// Package main hosts the kinograb CLI entrypoint and command tree.
//
// The Cobra-based command tree drives the film pipeline: scraping seed
// records, resolving their IMDb identity, fetching the TMDB supplement,
// merging and storing the result, plus the periodic rating refresh over the
// stored collection. Configuration, logging, optional Sentry reporting and
// the Prometheus listener are wired here so the internal packages stay free
// of process concerns.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/steelspace/kinograb/internal/config"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
			defer func() {
				if r := recover(); r != nil {
					sentry.CurrentHub().Recover(r)
					sentry.Flush(2 * time.Second)
					panic(r)
				}
			}()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCommand().ExecuteContext(ctx)
}
