// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/arcent/internal/logger"
)

// DefaultWatchDebounce coalesces the burst of events SQLite produces for a
// single commit (main file, -wal and -shm).
const DefaultWatchDebounce = 100 * time.Millisecond

// Notifier is told that the database changed on disk.
type Notifier interface {
	Notify()
}

// Watcher observes the SQLite file and its journal files and notifies after
// writes, so recent feeds also pick up changes made by other processes.
type Watcher struct {
	dbPath   string
	debounce time.Duration
	notifier Notifier
	logger   *logger.Logger
}

func NewWatcher(dbPath string, debounce time.Duration, notifier Notifier, logger *logger.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	return &Watcher{
		dbPath:   dbPath,
		debounce: debounce,
		notifier: notifier,
		logger:   logger,
	}
}

// Watch blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating fs watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.dbPath)
	if err = fw.Add(dir); err != nil {
		return fmt.Errorf("watch add %s: %w", dir, err)
	}
	w.logger.Debug().Str("func", "Watcher.Watch").Str("dir", dir).Msg("watching database dir")

	var (
		mu  sync.Mutex
		tmr *time.Timer
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if tmr != nil {
			tmr.Stop()
		}
		tmr = time.AfterFunc(w.debounce, w.notifier.Notify)
	}
	defer func() {
		mu.Lock()
		if tmr != nil {
			tmr.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.isDatabaseFile(ev.Name) {
				schedule()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "Watcher.Watch").Msg("fs watcher error")
		}
	}
}

// isDatabaseFile matches the database file and its -wal/-shm/-journal
// siblings.
func (w *Watcher) isDatabaseFile(name string) bool {
	base := filepath.Base(filepath.Clean(w.dbPath))
	got := filepath.Base(filepath.Clean(name))
	if got == base {
		return true
	}
	suffix, ok := strings.CutPrefix(got, base)
	if !ok {
		return false
	}
	switch suffix {
	case "-wal", "-shm", "-journal":
		return true
	}
	return false
}
