// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"path/filepath"

	"github.com/MKhiriev/arcent/internal/crypto"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/models"
)

// ProfileFile is the sealed profile document in the data directory.
const ProfileFile = "profile.sealed"

// ProfileStore persists the cached user profile. Its Load is the provider
// preference read by the repository façade on every call.
type ProfileStore struct {
	file   *sealedFile
	logger *logger.Logger
}

func NewProfileStore(dataDir string, sealer crypto.Sealer, logger *logger.Logger) *ProfileStore {
	return &ProfileStore{
		file:   &sealedFile{path: filepath.Join(dataDir, ProfileFile), sealer: sealer},
		logger: logger,
	}
}

// Load returns the stored profile, or nil when none was saved. A stored
// profile without a provider counts as none.
func (s *ProfileStore) Load(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	found, err := s.file.read(&profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ProfileStore.Load").Msg("failed to read profile")
		return nil, err
	}
	if !found || profile.Provider == "" {
		return nil, nil
	}
	return &profile, nil
}

// Save stores profile and marks it fetched.
func (s *ProfileStore) Save(ctx context.Context, profile models.UserProfile) error {
	profile.Fetched = true
	if err := s.file.write(profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ProfileStore.Save").Msg("failed to write profile")
		return err
	}
	return nil
}

func (s *ProfileStore) Clear(ctx context.Context) error {
	if err := s.file.remove(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ProfileStore.Clear").Msg("failed to remove profile")
		return err
	}
	return nil
}
