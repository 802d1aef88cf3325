// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		DataDir                string `json:"data_dir"`
		DeviceSecret           string `json:"device_secret"`
		CrashReportingDisabled bool   `json:"crash_reporting_disabled"`
		MetricsAddress         string `json:"metrics_address"`
		Version                string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN       string `json:"dsn"`
		PhotosDir string `json:"photos_dir"`
	} `json:"storage,omitempty"`

	Remote struct {
		Endpoint          string   `json:"endpoint"`
		ProjectID         string   `json:"project_id"`
		DatabaseID        string   `json:"database_id"`
		CollectionID      string   `json:"collection_id"`
		BucketID          string   `json:"bucket_id"`
		FunctionID        string   `json:"function_id"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second"`
	} `json:"remote,omitempty"`

	Auth struct {
		LoginTimeout     Duration `json:"login_timeout"`
		LoginAttempts    int      `json:"login_attempts"`
		ProfileAttempts  int      `json:"profile_attempts"`
		ProfileBaseDelay Duration `json:"profile_base_delay"`
		ProfileMaxDelay  Duration `json:"profile_max_delay"`
	} `json:"auth,omitempty"`

	Home struct {
		SearchDebounce Duration `json:"search_debounce"`
		RecentLimit    int      `json:"recent_limit"`
		PageSize       int      `json:"page_size"`
	} `json:"home,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DataDir:                jsonCfg.App.DataDir,
			DeviceSecret:           jsonCfg.App.DeviceSecret,
			CrashReportingDisabled: jsonCfg.App.CrashReportingDisabled,
			MetricsAddress:         jsonCfg.App.MetricsAddress,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DSN},
			Files: Files{PhotosDir: jsonCfg.Storage.PhotosDir},
		},
		Remote: Remote{
			Endpoint:          jsonCfg.Remote.Endpoint,
			ProjectID:         jsonCfg.Remote.ProjectID,
			DatabaseID:        jsonCfg.Remote.DatabaseID,
			CollectionID:      jsonCfg.Remote.CollectionID,
			BucketID:          jsonCfg.Remote.BucketID,
			FunctionID:        jsonCfg.Remote.FunctionID,
			RequestTimeout:    time.Duration(jsonCfg.Remote.RequestTimeout),
			RequestsPerSecond: jsonCfg.Remote.RequestsPerSecond,
		},
		Auth: Auth{
			LoginTimeout:     time.Duration(jsonCfg.Auth.LoginTimeout),
			LoginAttempts:    jsonCfg.Auth.LoginAttempts,
			ProfileAttempts:  jsonCfg.Auth.ProfileAttempts,
			ProfileBaseDelay: time.Duration(jsonCfg.Auth.ProfileBaseDelay),
			ProfileMaxDelay:  time.Duration(jsonCfg.Auth.ProfileMaxDelay),
		},
		Home: Home{
			SearchDebounce: time.Duration(jsonCfg.Home.SearchDebounce),
			RecentLimit:    jsonCfg.Home.RecentLimit,
			PageSize:       jsonCfg.Home.PageSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
