// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/arcent/internal/crypto"
)

// DeviceKeyFile holds salt ‖ secret, created on first start.
const DeviceKeyFile = "device.key"

// NewDeviceSealer builds the sealer for the profile and session files.
//
// The salt always comes from the device key file in dataDir, which is
// created with a random salt and secret when missing. A non-empty
// configuredSecret replaces the generated secret.
func NewDeviceSealer(dataDir, configuredSecret string) (crypto.Sealer, error) {
	salt, secret, err := loadOrCreateDeviceKey(filepath.Join(dataDir, DeviceKeyFile))
	if err != nil {
		return nil, err
	}

	if configuredSecret != "" {
		secret = []byte(configuredSecret)
	}

	return crypto.NewSealer(secret, salt)
}

func loadOrCreateDeviceKey(path string) (salt, secret []byte, err error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(raw) != crypto.SaltSize+crypto.SecretSize {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidDevKey, path)
		}
		return raw[:crypto.SaltSize], raw[crypto.SaltSize:], nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, nil, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}

	if salt, err = crypto.GenerateSalt(); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	if secret, err = crypto.GenerateSecret(); err != nil {
		return nil, nil, fmt.Errorf("generate secret: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrWritingFile, path, err)
	}
	if err := os.WriteFile(path, append(append([]byte{}, salt...), secret...), 0o600); err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrWritingFile, path, err)
	}

	return salt, secret, nil
}
