// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header. If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error.
//
// It serves the metrics worker's health endpoint and the fake BaaS routers
// used in tests.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a BaaS-style error document {"message","code","type"}.
func WriteError(w http.ResponseWriter, statusCode int, errType, message string) {
	_, _ = WriteJSON(w, map[string]any{
		"message": message,
		"code":    statusCode,
		"type":    errType,
	}, statusCode)
}
