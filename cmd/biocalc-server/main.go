// Command biocalc-server serves the biofuel life-cycle carbon
// intensity API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/EriikGabriel/bio-calc-sub000/internal/coeff"
	"github.com/EriikGabriel/bio-calc-sub000/internal/config"
	"github.com/EriikGabriel/bio-calc-sub000/internal/history"
	"github.com/EriikGabriel/bio-calc-sub000/internal/server"
	"github.com/EriikGabriel/bio-calc-sub000/internal/sheet"
)

func main() {
	flags := parseFlags()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if flags.DevMode {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	applyFlagOverrides(cfg, flags)

	coefficients, err := coeff.Load(cfg.Data.CoefficientsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Data.CoefficientsPath).Msg("load coefficients")
	}

	// The workbook is optional: without it every lookup resolves to
	// the default coefficients and the options endpoints report 503.
	var source *sheet.Source
	if cfg.Data.WorkbookPath != "" {
		source, err = sheet.Open(cfg.Data.WorkbookPath, logger)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Data.WorkbookPath).
				Msg("factors workbook unavailable, using default coefficients")
			source = nil
		} else {
			defer source.Close()
		}
	}
	resolver := sheet.NewCoefficientResolver(source, cfg.Data.FactorsSheet, cfg.Data.FactorsRange, logger)

	store, err := history.Open(cfg.Data.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Data.DatabasePath).Msg("open history database")
	}
	defer store.Close()

	srv := server.New(server.Options{
		Coefficients: coefficients,
		Source:       source,
		Resolver:     resolver,
		History:      store,
		OptionsSheet: cfg.Data.OptionsSheet,
		DevMode:      cfg.Server.DevMode || flags.DevMode,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().Str("addr", cfg.Server.Addr).Msg("starting biocalc server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
	<-shutdownDone
}

func applyFlagOverrides(cfg *config.AppConfig, flags *Flags) {
	if flags.Addr != "" {
		cfg.Server.Addr = flags.Addr
	}
	if flags.WorkbookPath != "" {
		cfg.Data.WorkbookPath = flags.WorkbookPath
	}
	if flags.CoefficientsPath != "" {
		cfg.Data.CoefficientsPath = flags.CoefficientsPath
	}
	if flags.DatabasePath != "" {
		cfg.Data.DatabasePath = flags.DatabasePath
	}
}
