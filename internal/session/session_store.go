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

// SessionFile is the sealed BaaS session document in the data directory.
const SessionFile = "session.sealed"

// SessionStore persists the BaaS session obtained at sign-in.
type SessionStore struct {
	file *sealedFile
}

func NewSessionStore(dataDir string, sealer crypto.Sealer) *SessionStore {
	return &SessionStore{
		file: &sealedFile{path: filepath.Join(dataDir, SessionFile), sealer: sealer},
	}
}

// Load returns the stored session, or nil when there is none or it has no
// secret.
func (s *SessionStore) Load(ctx context.Context) (*models.Session, error) {
	var session models.Session
	found, err := s.file.read(&session)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SessionStore.Load").Msg("failed to read session")
		return nil, err
	}
	if !found || session.Secret == "" {
		return nil, nil
	}
	return &session, nil
}

func (s *SessionStore) Save(_ context.Context, session models.Session) error {
	return s.file.write(session)
}

func (s *SessionStore) Clear(_ context.Context) error {
	return s.file.remove()
}
