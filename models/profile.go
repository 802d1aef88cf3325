// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MinProfileNameLength is the shortest display name accepted for local mode.
const MinProfileNameLength = 2

// Provider is the persisted storage/authentication preference of the user.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

// UserProfile is the cached identity of the signed-in user.
type UserProfile struct {
	Name       string   `json:"name"`
	AvatarPath *string  `json:"avatarPath,omitempty"`
	Provider   Provider `json:"provider"`
	Fetched    bool     `json:"fetched"`
}

// Session is a BaaS session obtained through the login function.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

// Account is the authenticated BaaS account.
type Account struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Prefs holds free-form account preferences, e.g. "avatarUrl".
	Prefs map[string]any `json:"prefs,omitempty"`
}

// AvatarURL returns the "avatarUrl" preference, if any.
func (a Account) AvatarURL() string {
	url, _ := a.Prefs["avatarUrl"].(string)
	return url
}

// Backend is the closed set of storage backends an operation can be routed to.
type Backend int

const (
	BackendLocal Backend = iota
	BackendRemote
)

func (b Backend) String() string {
	switch b {
	case BackendLocal:
		return "local"
	case BackendRemote:
		return "remote"
	default:
		return "unknown"
	}
}
