// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/crash"
	handler "github.com/MKhiriev/arcent/internal/handler/http"
	"github.com/MKhiriev/arcent/internal/home"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/remote"
	"github.com/MKhiriev/arcent/internal/repository"
	"github.com/MKhiriev/arcent/internal/server"
	"github.com/MKhiriev/arcent/internal/service"
	"github.com/MKhiriev/arcent/internal/session"
	"github.com/MKhiriev/arcent/internal/store"
	"github.com/MKhiriev/arcent/internal/tui"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/internal/validators"
	"github.com/MKhiriev/arcent/internal/workers"
	"github.com/MKhiriev/arcent/models"
)

// ShareCacheDirName is the data dir subdirectory holding share copies.
const ShareCacheDirName = "cache"

var _ Client = (*App)(nil)

type App struct {
	storages *store.Storages
	auth     service.AuthService
	profiles *session.ProfileStore
	home     *home.ViewModel
	workers  *workers.Workers
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp builds every component from cfg. The database is open when it
// returns; Run closes it.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	log.Info().Msg("creating new app...")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reporter := crash.NewReporter(log, registry, !cfg.App.CrashReportingDisabled)

	storages, err := store.NewStorages(ctx, cfg.Storage, reporter, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(cfg, buildInfo, storages, registry, reporter, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	storages *store.Storages,
	registry *prometheus.Registry,
	reporter crash.Reporter,
	log *logger.Logger,
) (*App, error) {
	baas, err := newBaaSAdapter(cfg.Remote, log)
	if err != nil {
		return nil, err
	}

	sealer, err := session.NewDeviceSealer(cfg.App.DataDir, cfg.App.DeviceSecret)
	if err != nil {
		return nil, fmt.Errorf("create device sealer: %w", err)
	}
	profiles := session.NewProfileStore(cfg.App.DataDir, sealer, log)
	sessions := session.NewSessionStore(cfg.App.DataDir, sealer)
	events := session.NewEvents()

	repo := repository.NewDynamic(
		profiles,
		func() repository.AchievementRepository { return storages.Achievements },
		func() repository.AchievementRepository {
			return remote.NewRemoteAchievements(baas, utils.NewUUIDGenerator(), reporter, log)
		},
		log,
	)

	auth := service.NewAuthService(baas, profiles, sessions, repo, events, reporter, cfg.Auth, log)
	vm := home.NewViewModel(repo, events, cfg.Home, log)

	ws := workers.NewWorkers(log).
		Add("db-watcher", workers.NewDBWatcherWorker(storages.Watcher(log), log))

	if cfg.App.MetricsAddress != "" {
		h := handler.NewHandler(storages.DB, repo, registry, buildInfo, log)
		srv, err := server.NewServer(h.Init(), cfg.App.MetricsAddress, log)
		if err != nil {
			return nil, fmt.Errorf("create status server: %w", err)
		}
		ws.Add("status-server", workers.NewStatusServerWorker(srv, log))
	}

	ui, err := tui.New(tui.Deps{
		Auth:      auth,
		Writer:    repo,
		Home:      vm,
		Validator: validators.NewAchievementValidator(),
		CacheDir:  filepath.Join(cfg.App.DataDir, ShareCacheDirName),
		BuildInfo: buildInfo,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		auth:     auth,
		profiles: profiles,
		home:     vm,
		workers:  ws,
		ui:       ui,
		logger:   log,
	}, nil
}

// newBaaSAdapter falls back to an adapter that refuses every call when no
// endpoint is configured, so local mode works without a remote.
func newBaaSAdapter(cfg config.Remote, log *logger.Logger) (adapter.BaaSAdapter, error) {
	baas, err := adapter.NewHTTPBaaSAdapter(cfg, log)
	if errors.Is(err, adapter.ErrRemoteNotConfigured) {
		log.Warn().Msg("remote endpoint is not configured, only local mode is available")
		return adapter.NewDisabledAdapter(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}
	return baas, nil
}

// Run restores the remote session, starts the view-model and the workers,
// shows the UI and tears everything down once the UI exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	a.restoreSession(ctx, &wg)

	a.home.Start(ctx)

	workersDone := make(chan error, 1)
	go func() { workersDone <- a.workers.Run(ctx) }()

	uiErr := a.ui.Run(ctx)

	cancel()
	a.home.Wait()
	wg.Wait()
	if err := <-workersDone; err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("background workers failed")
	}

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("error closing storage")
	}

	return uiErr
}

// restoreSession puts the stored session back on the adapter for a google
// profile and refreshes the cached profile in the background. A rejected or
// unreachable session keeps the cached profile; remote calls then degrade.
func (a *App) restoreSession(ctx context.Context, wg *sync.WaitGroup) {
	profile, err := a.profiles.Load(ctx)
	if err != nil || profile == nil || profile.Provider != models.ProviderGoogle {
		return
	}

	wg.Go(func() {
		if !a.auth.HasActiveSession(ctx) {
			a.logger.Warn().Str("func", "App.restoreSession").Msg("stored session is not active")
			return
		}
		if err := a.auth.FetchAndCacheProfile(ctx); err != nil {
			a.logger.Err(err).Str("func", "App.restoreSession").Msg("error refreshing profile")
		}
	})
}
