// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application constraints before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.DataDir == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") || cfg.Storage.Files.PhotosDir == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Remote.RemoteEnabled() {
		r := cfg.Remote
		if r.ProjectID == "" || r.DatabaseID == "" || r.CollectionID == "" || r.BucketID == "" {
			err = errors.Join(err, ErrInvalidRemoteConfigs)
		}
	}
	if cfg.Remote.RequestTimeout <= 0 || cfg.Remote.RequestsPerSecond < 0 {
		err = errors.Join(err, ErrInvalidRemoteConfigs)
	}

	if cfg.Auth.LoginTimeout <= 0 || cfg.Auth.LoginAttempts <= 0 || cfg.Auth.ProfileAttempts <= 0 {
		err = errors.Join(err, ErrInvalidAuthConfigs)
	}

	if cfg.Home.SearchDebounce < 0 || cfg.Home.RecentLimit <= 0 || cfg.Home.PageSize <= 0 {
		err = errors.Join(err, ErrInvalidHomeConfigs)
	}

	return err
}
