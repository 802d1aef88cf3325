// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/crash"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/utils"
)

// Storages groups the on-device storage layer.
type Storages struct {
	DB           *DB
	Achievements *LocalAchievements
	Photos       *PhotoFiles
}

// NewStorages opens the SQLite database named by cfg.DB.DSN (creating the
// file if needed), runs migrations and builds the local achievement store.
func NewStorages(ctx context.Context, cfg config.Storage, reporter crash.Reporter, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	photos := NewPhotoFiles(cfg.Files.PhotosDir, logger)

	return &Storages{
		DB:     db,
		Photos: photos,
		Achievements: NewLocalAchievements(
			NewAchievementRepository(db, logger),
			photos,
			utils.NewUUIDGenerator(),
			reporter,
			logger,
		),
	}, nil
}

// Watcher returns a database file watcher feeding the local store.
func (s *Storages) Watcher(logger *logger.Logger) *Watcher {
	return NewWatcher(s.DB.Path(), DefaultWatchDebounce, s.Achievements, logger)
}

func (s *Storages) Close() error {
	return s.DB.Close()
}
