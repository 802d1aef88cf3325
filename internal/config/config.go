// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the arcent
// client. It is populated by merging values from the secrets properties
// file, environment variables, command-line flags, an optional JSON file and
// finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the data directory.
	App App `envPrefix:"APP_"`

	// Storage holds the on-device database and photo directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the BaaS endpoint and resource identifiers.
	Remote Remote `envPrefix:"REMOTE_"`

	// Auth holds sign-in timeouts and retry budgets.
	Auth Auth `envPrefix:"AUTH_"`

	// Home holds the home screen paging and search tuning.
	Home Home `envPrefix:"HOME_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// SecretsFilePath is the git-ignored properties file holding build-time
	// secrets (endpoint, project and resource ids). Loaded into the process
	// environment before env parsing.
	SecretsFilePath string `env:"SECRETS_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the app-private directory holding the database, photos,
	// sealed profile/session files and logs.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DeviceSecret seeds the key that seals the profile and session files.
	// When empty a random secret is generated once and kept in DataDir.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// CrashReportingDisabled opts out of error reporting.
	// Env: APP_CRASH_REPORTING_DISABLED
	CrashReportingDisabled bool `env:"CRASH_REPORTING_DISABLED"`

	// MetricsAddress, when set, exposes Prometheus metrics on host:port.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the on-device persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the photo directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for achievement photos.
type Files struct {
	// PhotosDir is the directory local photos are written to.
	// Env: STORAGE_FILES_PHOTOS_DIR
	PhotosDir string `env:"PHOTOS_DIR"`
}

// Remote holds the BaaS coordinates. Remote mode is unavailable while
// Endpoint is empty.
type Remote struct {
	// Endpoint is the BaaS API root (e.g. "https://cloud.example.com/v1").
	// Env: REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// ProjectID is sent as X-Appwrite-Project on every request.
	// Env: REMOTE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// DatabaseID and CollectionID address the achievements collection.
	// Env: REMOTE_DATABASE_ID, REMOTE_COLLECTION_ID
	DatabaseID   string `env:"DATABASE_ID"`
	CollectionID string `env:"COLLECTION_ID"`

	// BucketID is the storage bucket photos are uploaded to.
	// Env: REMOTE_BUCKET_ID
	BucketID string `env:"BUCKET_ID"`

	// FunctionID is the cloud function exchanging a Google ID token for a
	// session.
	// Env: REMOTE_FUNCTION_ID
	FunctionID string `env:"FUNCTION_ID"`

	// RequestTimeout bounds a single outbound request.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond caps outbound request rate; burst equals the ceiling
	// of the rate.
	// Env: REMOTE_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`
}

// Auth holds sign-in settings.
type Auth struct {
	// LoginTimeout bounds the whole sign-in flow.
	// Env: AUTH_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`

	// LoginAttempts is how many times the login function is executed.
	// Env: AUTH_LOGIN_ATTEMPTS
	LoginAttempts int `env:"LOGIN_ATTEMPTS"`

	// ProfileAttempts, ProfileBaseDelay and ProfileMaxDelay drive the
	// exponential backoff of the profile fetch.
	// Env: AUTH_PROFILE_ATTEMPTS, AUTH_PROFILE_BASE_DELAY, AUTH_PROFILE_MAX_DELAY
	ProfileAttempts  int           `env:"PROFILE_ATTEMPTS"`
	ProfileBaseDelay time.Duration `env:"PROFILE_BASE_DELAY"`
	ProfileMaxDelay  time.Duration `env:"PROFILE_MAX_DELAY"`
}

// Home holds home screen tuning.
type Home struct {
	// SearchDebounce is the quiet period before a typed query is executed.
	// Env: HOME_SEARCH_DEBOUNCE
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE"`

	// RecentLimit is the size of the recent strip.
	// Env: HOME_RECENT_LIMIT
	RecentLimit int `env:"RECENT_LIMIT"`

	// PageSize is the batch size of the "all" list.
	// Env: HOME_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// RemoteEnabled reports whether a BaaS endpoint is configured.
func (r Remote) RemoteEnabled() bool {
	return r.Endpoint != ""
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables (after the secrets file has been loaded into them)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
