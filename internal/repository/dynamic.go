// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package repository

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/models"
)

// Factory builds a backend on first use.
type Factory func() AchievementRepository

// Dynamic forwards every call to the backend chosen by the profile stored
// at the time of the call. Both backends are built lazily and kept for the
// lifetime of the Dynamic.
type Dynamic struct {
	profiles ProfileSource
	local    func() AchievementRepository
	remote   func() AchievementRepository

	remoteBuilt atomic.Bool
	logger      *logger.Logger
}

func NewDynamic(profiles ProfileSource, local, remote Factory, logger *logger.Logger) *Dynamic {
	d := &Dynamic{
		profiles: profiles,
		local:    sync.OnceValue(local),
		logger:   logger,
	}
	d.remote = sync.OnceValue(func() AchievementRepository {
		defer d.remoteBuilt.Store(true)
		return remote()
	})

	return d
}

// ActiveBackend re-reads the profile and resolves the backend for it. A
// profile that cannot be read counts as no profile.
func (d *Dynamic) ActiveBackend(ctx context.Context) models.Backend {
	profile, err := d.profiles.Load(ctx)
	if err != nil {
		d.logger.Err(err).Str("func", "Dynamic.ActiveBackend").Msg("failed to read profile, routing to remote")
		profile = nil
	}
	return ResolveBackend(profile)
}

// Active returns the backend that serves the next call.
func (d *Dynamic) Active(ctx context.Context) AchievementRepository {
	backend := d.ActiveBackend(ctx)
	d.logger.Debug().Str("func", "Dynamic.Active").Stringer("backend", backend).Msg("routing")

	if backend == models.BackendLocal {
		return d.local()
	}
	return d.remote()
}

func (d *Dynamic) Add(ctx context.Context, in models.AchievementInput) (models.Achievement, error) {
	return d.Active(ctx).Add(ctx, in)
}

func (d *Dynamic) Update(ctx context.Context, in models.AchievementUpdate) (models.Achievement, error) {
	return d.Active(ctx).Update(ctx, in)
}

func (d *Dynamic) Delete(ctx context.Context, id string) error {
	return d.Active(ctx).Delete(ctx, id)
}

func (d *Dynamic) Recent(ctx context.Context, limit int) <-chan []models.Achievement {
	return d.Active(ctx).Recent(ctx, limit)
}

func (d *Dynamic) LoadPage(ctx context.Context, cursor *string, pageSize int) (models.Page, error) {
	return d.Active(ctx).LoadPage(ctx, cursor, pageSize)
}

func (d *Dynamic) Search(ctx context.Context, query string) ([]models.Achievement, error) {
	return d.Active(ctx).Search(ctx, query)
}

// ResetRemoteCache clears the remote recent cache. A remote backend that
// was never built has nothing to clear and is not built here.
func (d *Dynamic) ResetRemoteCache() {
	if !d.remoteBuilt.Load() {
		return
	}
	if resetter, ok := d.remote().(CacheResetter); ok {
		resetter.ResetCache()
	}
}

// WipeLocal deletes all local data regardless of the active backend.
func (d *Dynamic) WipeLocal(ctx context.Context) error {
	if wiper, ok := d.local().(Wiper); ok {
		return wiper.Wipe(ctx)
	}
	return nil
}
