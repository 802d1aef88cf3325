// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultAppDirName        = "arcent"
	defaultDBFileName        = "arcent.db"
	defaultPhotosDirName     = "achievements_photos"
	defaultRequestTimeout    = 30 * time.Second
	defaultRequestsPerSecond = 10
	defaultLoginTimeout      = 170 * time.Second
	defaultLoginAttempts     = 3
	defaultProfileAttempts   = 6
	defaultProfileBaseDelay  = 500 * time.Millisecond
	defaultProfileMaxDelay   = 8 * time.Second
	defaultSearchDebounce    = 350 * time.Millisecond
	defaultRecentLimit       = 5
	defaultPageSize          = 20
)

// defaultConfig returns the lowest-priority source. Paths are derived from
// dataDir, or from the user config dir when dataDir is empty.
func defaultConfig(dataDir string) *StructuredConfig {
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = os.TempDir()
		}
		dataDir = filepath.Join(base, defaultAppDirName)
	}

	return &StructuredConfig{
		App: App{
			DataDir: dataDir,
		},
		Storage: Storage{
			DB:    DB{DSN: filepath.Join(dataDir, defaultDBFileName)},
			Files: Files{PhotosDir: filepath.Join(dataDir, defaultPhotosDirName)},
		},
		Remote: Remote{
			RequestTimeout:    defaultRequestTimeout,
			RequestsPerSecond: defaultRequestsPerSecond,
		},
		Auth: Auth{
			LoginTimeout:     defaultLoginTimeout,
			LoginAttempts:    defaultLoginAttempts,
			ProfileAttempts:  defaultProfileAttempts,
			ProfileBaseDelay: defaultProfileBaseDelay,
			ProfileMaxDelay:  defaultProfileMaxDelay,
		},
		Home: Home{
			SearchDebounce: defaultSearchDebounce,
			RecentLimit:    defaultRecentLimit,
			PageSize:       defaultPageSize,
		},
	}
}
