// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/mock"
	"github.com/MKhiriev/arcent/internal/session"
	"github.com/MKhiriev/arcent/models"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.StructuredConfig{
		App: config.App{DataDir: dir},
		Storage: config.Storage{
			DB:    config.DB{DSN: filepath.Join(dir, "arcent.db")},
			Files: config.Files{PhotosDir: filepath.Join(dir, "photos")},
		},
		Remote: config.Remote{RequestTimeout: time.Second, RequestsPerSecond: 5},
		Auth: config.Auth{
			LoginTimeout:     time.Second,
			LoginAttempts:    1,
			ProfileAttempts:  1,
			ProfileBaseDelay: time.Millisecond,
			ProfileMaxDelay:  time.Millisecond,
		},
		Home: config.Home{SearchDebounce: 10 * time.Millisecond, RecentLimit: 5, PageSize: 20},
	}
}

func TestNewBaaSAdapter_FallsBackWhenNotConfigured(t *testing.T) {
	baas, err := newBaaSAdapter(config.Remote{}, logger.Nop())
	require.NoError(t, err)

	_, err = baas.GetAccount(context.Background())
	assert.ErrorIs(t, err, adapter.ErrRemoteNotConfigured)
}

func TestNewBaaSAdapter_InvalidEndpoint(t *testing.T) {
	_, err := newBaaSAdapter(config.Remote{Endpoint: "://bad"}, logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_LocalOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.MetricsAddress = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1", "d", "c"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storages.Close() })

	assert.Equal(t, 2, app.workers.Len(), "db watcher and status server")
	assert.NotNil(t, app.ui)

	ctx := context.Background()
	require.NoError(t, app.auth.UseLocal(ctx, "Ann"))

	profile, err := app.profiles.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, models.ProviderLocal, profile.Provider)
}

func TestNewApp_WithoutMetrics(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), models.NewAppBuildInfo("1", "d", "c"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storages.Close() })

	assert.Equal(t, 1, app.workers.Len())
}

// ── restoreSession ──

func newRestoreApp(t *testing.T, provider models.Provider) (*App, *mock.MockAuthService) {
	t.Helper()
	dir := t.TempDir()

	sealer, err := session.NewDeviceSealer(dir, "")
	require.NoError(t, err)
	profiles := session.NewProfileStore(dir, sealer, logger.Nop())
	if provider != "" {
		require.NoError(t, profiles.Save(context.Background(), models.UserProfile{Name: "Ann", Provider: provider}))
	}

	auth := mock.NewMockAuthService(gomock.NewController(t))
	return &App{auth: auth, profiles: profiles, logger: logger.Nop()}, auth
}

func TestRestoreSession_GoogleRefreshesProfile(t *testing.T) {
	app, auth := newRestoreApp(t, models.ProviderGoogle)
	ctx := context.Background()

	gomock.InOrder(
		auth.EXPECT().HasActiveSession(ctx).Return(true),
		auth.EXPECT().FetchAndCacheProfile(ctx).Return(errors.New("offline")),
	)

	var wg sync.WaitGroup
	app.restoreSession(ctx, &wg)
	wg.Wait()
}

func TestRestoreSession_InactiveSessionKeepsProfile(t *testing.T) {
	app, auth := newRestoreApp(t, models.ProviderGoogle)
	ctx := context.Background()

	auth.EXPECT().HasActiveSession(ctx).Return(false)

	var wg sync.WaitGroup
	app.restoreSession(ctx, &wg)
	wg.Wait()

	profile, err := app.profiles.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, models.ProviderGoogle, profile.Provider)
}

func TestRestoreSession_SkipsLocalAndMissingProfiles(t *testing.T) {
	for _, provider := range []models.Provider{models.ProviderLocal, ""} {
		app, _ := newRestoreApp(t, provider)

		var wg sync.WaitGroup
		app.restoreSession(context.Background(), &wg)
		wg.Wait()
	}
}
