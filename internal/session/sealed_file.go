// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/arcent/internal/crypto"
)

// sealedFile is one JSON document sealed on disk.
type sealedFile struct {
	mu     sync.Mutex
	path   string
	sealer crypto.Sealer
}

// read opens the file into target. It returns false when the file does not
// exist yet.
func (f *sealedFile) read(target any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrReadingFile, f.path, err)
	}

	if err := f.sealer.Open(blob, target); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrOpeningFile, f.path, err)
	}
	return true, nil
}

// write replaces the file atomically.
func (f *sealedFile) write(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := f.sealer.Seal(v)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingFile, f.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingFile, f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingFile, f.path, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w %s: %w", ErrWritingFile, f.path, err)
	}

	return nil
}

func (f *sealedFile) remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %s: %w", ErrRemovingFile, f.path, err)
	}
	return nil
}
