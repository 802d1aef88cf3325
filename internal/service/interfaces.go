// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/arcent/internal/session"
	"github.com/MKhiriev/arcent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the signed-in identity: Google sign-in through the login
// function, the local-only mode and sign-out.
type AuthService interface {
	// LoginWithGoogle exchanges a Google ID token for a BaaS session, stores
	// it and caches the account profile. The whole flow is bounded by the
	// configured login timeout.
	LoginWithGoogle(ctx context.Context, idToken string) error

	// FetchAndCacheProfile reads the BaaS account with exponential backoff
	// and saves it as a google profile. When every attempt fails the
	// previously cached name and avatar are kept.
	FetchAndCacheProfile(ctx context.Context) error

	// HasActiveSession reports whether the stored session is still accepted
	// by the BaaS.
	HasActiveSession(ctx context.Context) bool

	// UseLocal switches to local-only mode under name.
	UseLocal(ctx context.Context, name string) error

	// Profile returns the cached profile, nil when signed out.
	Profile(ctx context.Context) (*models.UserProfile, error)

	// Logout clears the session and profile and drops remote cached state.
	Logout(ctx context.Context) error

	// DeleteLocalData wipes every local achievement and photo, then signs out.
	DeleteLocalData(ctx context.Context) error
}

// ProfileStorage persists the cached profile.
type ProfileStorage interface {
	Load(ctx context.Context) (*models.UserProfile, error)
	Save(ctx context.Context, profile models.UserProfile) error
	Clear(ctx context.Context) error
}

// SessionStorage persists the BaaS session.
type SessionStorage interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, sess models.Session) error
	Clear(ctx context.Context) error
}

// RepositoryControl is the part of the achievement façade that depends on
// who is signed in.
type RepositoryControl interface {
	ResetRemoteCache()
	WipeLocal(ctx context.Context) error
}

// EventSink is told about identity changes.
type EventSink interface {
	Fire(change session.AuthChange)
}
