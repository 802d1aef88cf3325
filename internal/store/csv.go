// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "strings"

const csvDelimiter = ","

// EncodeCSV flattens labels into one column value. An empty list is stored
// as NULL.
func EncodeCSV(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	joined := strings.Join(values, csvDelimiter)
	return &joined
}

// DecodeCSV reverses EncodeCSV. NULL and blank values decode to an empty,
// non-nil list.
func DecodeCSV(value *string) []string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return []string{}
	}
	return strings.Split(*value, csvDelimiter)
}
