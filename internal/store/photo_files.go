// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
)

// PhotoFiles stores photos as plain files named <unixMillis>_<hash>.<ext>.
type PhotoFiles struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

func NewPhotoFiles(dir string, logger *logger.Logger) *PhotoFiles {
	return &PhotoFiles{
		dir:    dir,
		now:    time.Now,
		logger: logger,
	}
}

// Dir returns the photo directory.
func (p *PhotoFiles) Dir() string {
	return p.dir
}

func (p *PhotoFiles) Save(ctx context.Context, title string, photo models.Photo) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		p.logger.Err(err).Str("func", "PhotoFiles.Save").Str("dir", p.dir).Msg("error creating photos dir")
		return "", fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	name := fmt.Sprintf("%d_%s.%s", p.now().UnixMilli(), utils.ShortHash(title), PhotoExtension(photo.MIME))
	path := filepath.Join(p.dir, name)

	if err := os.WriteFile(path, photo.Bytes, 0o600); err != nil {
		p.logger.Err(err).Str("func", "PhotoFiles.Save").Str("path", path).Msg("error writing photo")
		return "", fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	return FileURI(path), nil
}

func (p *PhotoFiles) RemoveAll(ctx context.Context) error {
	if err := os.RemoveAll(p.dir); err != nil {
		p.logger.Err(err).Str("func", "PhotoFiles.RemoveAll").Str("dir", p.dir).Msg("error removing photos dir")
		return fmt.Errorf("%w: %w", ErrRemovingPhotos, err)
	}
	return nil
}

// PhotoExtension picks a file extension for mime: png, webp or jpg.
func PhotoExtension(mime string) string {
	mime = strings.ToLower(mime)
	switch {
	case strings.Contains(mime, "png"):
		return "png"
	case strings.Contains(mime, "webp"):
		return "webp"
	default:
		return "jpg"
	}
}

// FileURI turns an absolute path into a file:// URI.
func FileURI(path string) string {
	return "file://" + filepath.ToSlash(path)
}

// PathFromURI returns the filesystem path of a file:// URI. Any other scheme
// yields false.
func PathFromURI(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}
	return filepath.FromSlash(u.Path), true
}
