// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/arcent/internal/logger"
)

type dbWatcherWorker struct {
	watcher DBWatcher
	logger  *logger.Logger
}

// NewDBWatcherWorker runs the database file watcher. The watcher only
// refreshes local feeds, so a failure to start it is logged and not fatal.
func NewDBWatcherWorker(watcher DBWatcher, logger *logger.Logger) Worker {
	return &dbWatcherWorker{watcher: watcher, logger: logger}
}

func (w *dbWatcherWorker) Run(ctx context.Context) error {
	if err := w.watcher.Watch(ctx); err != nil {
		w.logger.Warn().Err(err).Str("func", "dbWatcherWorker.Run").Msg("database watcher unavailable, external changes will not refresh feeds")
	}
	return nil
}
