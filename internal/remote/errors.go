// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"errors"
	"strings"

	"github.com/MKhiriev/arcent/internal/adapter"
)

// degradedIndexMarkers are the message fragments of a BaaS error that mean
// the achievedAt ordering cannot be served.
var degradedIndexMarkers = []string{
	"attribute not found",
	"achievedat",
	"invalid query",
}

// IsDegradedIndexError reports whether err is a BaaS error saying that the
// ordering attribute is not indexed or not queryable. Transport errors never
// match.
func IsDegradedIndexError(err error) bool {
	var baasErr *adapter.BaaSError
	if !errors.As(err, &baasErr) {
		return false
	}

	msg := strings.ToLower(baasErr.Message)
	for _, marker := range degradedIndexMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
