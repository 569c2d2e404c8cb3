// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/tourguide/internal/config"
	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/remote"
	"github.com/tomtom215/tourguide/internal/shell"
	"github.com/tomtom215/tourguide/internal/status"
	"github.com/tomtom215/tourguide/internal/store"
	"github.com/tomtom215/tourguide/internal/supervisor"
	"github.com/tomtom215/tourguide/internal/supervisor/services"
	"github.com/tomtom215/tourguide/internal/viewmodel"
)

func main() {
	os.Exit(run())
}

//nolint:gocyclo // sequential setup steps
func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("api_url", cfg.API.BaseURL).
		Str("store_path", cfg.Store.Path).
		Bool("breaker", cfg.Breaker.Enabled).
		Msg("Configuration loaded")

	kv, err := store.OpenBadger(cfg.Store.Path)
	if err != nil {
		logging.Error().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open store")
		return 1
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logging.Err(err).Msg("Error closing store")
		}
	}()

	// The breaker is optional; a nil interface keeps it out of /healthz.
	var api remote.API = remote.NewClient(&cfg.API)
	var breaker status.BreakerStater
	if cfg.Breaker.Enabled {
		cb := remote.NewCircuitBreakerClient(api, &cfg.Breaker)
		api, breaker = cb, cb
	}
	var listings *remote.CachingClient
	if cfg.API.CacheTTL > 0 {
		listings = remote.NewCachingClient(api, &cfg.API)
		api = listings
	}

	term := shell.NewTerminal(os.Stdin, os.Stdout)
	vm, err := viewmodel.New(viewmodel.Config{
		AssetURL:   cfg.API.AssetURL,
		Cities:     cfg.App.Cities,
		Categories: cfg.App.Categories,
	}, viewmodel.Deps{
		API:      api,
		Store:    kv,
		Opener:   term.Opener(),
		Prompter: term.Prompter(),
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create view model")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	treeCtx, cancelTree := context.WithCancel(ctx)
	defer cancelTree()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	if cfg.Store.Path != "" && cfg.Store.GCInterval > 0 {
		tree.AddDataService(services.NewStoreGCService(kv, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
		logging.Info().Dur("interval", cfg.Store.GCInterval).Msg("Store GC service added")
	}
	if listings != nil {
		tree.AddDataService(services.NewCacheSweepService(listings, cfg.API.CacheTTL))
		logging.Info().Dur("interval", cfg.API.CacheTTL).Msg("Cache sweep service added")
	}
	if cfg.Status.Addr != "" {
		routes := status.RouterConfig{
			RateLimit:   cfg.Status.RateLimit,
			RateWindow:  time.Minute,
			CORSOrigins: cfg.Status.CORSOrigins,
		}
		server := status.NewServer(cfg.Status.Addr, status.NewHandler(vm, breaker), routes)
		tree.AddStatusService(services.NewHTTPServerService("status-server", server, cfg.Status.ShutdownTimeout))
		logging.Info().Str("addr", cfg.Status.Addr).Msg("Status server service added")
	}

	errCh := tree.ServeBackground(treeCtx)

	if err := vm.Restore(ctx); err != nil {
		logging.Warn().Err(err).Msg("Could not load spots at startup")
	}

	code := 0
	if err := shell.New(vm, term).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Shell stopped")
		code = 1
	}

	cancelTree()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor shutdown error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Tourguide stopped")
	return code
}
