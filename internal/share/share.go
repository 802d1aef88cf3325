// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package share turns an achievement into something another app can take:
// plain text and, for local photos, a copy in a share cache.
package share

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/arcent/models"
)

// CacheDirName is the subdirectory of the cache dir holding shared images.
const CacheDirName = "share_images"

// markerRegex matches markdown line markers: headings, bullets, quotes,
// code fences and numbered items.
var markerRegex = regexp.MustCompile("(?m)^\\s{0,3}(#{1,6}\\s+|[-*>`]\\s*|\\d+\\.\\s+)")

// FormatText is the title, then a blank line and the details stripped of
// markdown markers when there are any.
func FormatText(a models.Achievement) string {
	var sb strings.Builder
	sb.WriteString(a.Title)

	raw := models.StringValue(a.Details)
	if strings.TrimSpace(raw) == "" {
		return sb.String()
	}

	cleaned := markerRegex.ReplaceAllString(raw, " ")
	cleaned = strings.ReplaceAll(cleaned, "**", "")
	cleaned = strings.ReplaceAll(cleaned, "*", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned != "" {
		sb.WriteString("\n\n")
		sb.WriteString(cleaned)
	}
	return sb.String()
}

// PrepareImageFile copies the photo behind photoURL into cacheDir and
// returns the copy's path. Only local files can be shared; any failure
// yields "".
func PrepareImageFile(photoURL, cacheDir string) string {
	src := strings.TrimPrefix(photoURL, "file://")
	if src == "" || strings.Contains(src, "://") {
		return ""
	}

	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}

	dir := filepath.Join(cacheDir, CacheDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return ""
	}

	dst := filepath.Join(dir, fmt.Sprintf("share_%d%s", time.Now().UnixMilli(), extension(src)))
	if err := copyFile(src, dst); err != nil {
		_ = os.Remove(dst)
		return ""
	}
	return dst
}

func extension(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		return ext
	}
	return ".jpg"
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
