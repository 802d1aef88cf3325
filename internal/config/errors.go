// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing data directory.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN, or a
	// missing photos directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates an endpoint without the resource ids
	// it needs, or invalid request limits.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidAuthConfigs indicates non-positive sign-in timeouts or
	// attempt counts.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidHomeConfigs indicates invalid paging or debounce settings.
	ErrInvalidHomeConfigs = errors.New("invalid home configuration")
)
