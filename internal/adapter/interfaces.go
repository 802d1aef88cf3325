// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST client of the backend-as-a-service (an
// Appwrite-compatible API) that hosts remote achievements: account lookup,
// document CRUD in one collection, photo upload to one storage bucket and the
// sign-in cloud function.
//
// Non-2xx responses are returned as *BaaSError values wrapping the sentinel
// errors from errors.go, so callers can use [errors.Is] on the status class
// and still inspect the server message.
package adapter

import (
	"context"

	"github.com/MKhiriev/arcent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/baas_adapter_mock.go -package=mock

// BaaSAdapter talks to the backend-as-a-service on behalf of the signed-in
// user.
type BaaSAdapter interface {
	// SetSession stores the session secret sent as X-Appwrite-Session on
	// subsequent requests. An empty secret signs the adapter out.
	SetSession(secret string)

	// Session returns the current session secret.
	Session() string

	// GetAccount returns the account the session belongs to.
	GetAccount(ctx context.Context) (models.Account, error)

	// ListDocuments lists achievement documents matching queries.
	ListDocuments(ctx context.Context, queries []Query) (DocumentList, error)

	// CreateDocument creates a document with a client-chosen id.
	CreateDocument(ctx context.Context, id string, data map[string]any, permissions []string) (Document, error)

	// UpdateDocument patches an existing document.
	UpdateDocument(ctx context.Context, id string, data map[string]any, permissions []string) (Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// CreateFile uploads photo to the bucket under fileID.
	CreateFile(ctx context.Context, fileID string, photo models.Photo, permissions []string) (File, error)

	// CreateExecution runs the sign-in function synchronously with body.
	CreateExecution(ctx context.Context, body string) (Execution, error)

	// FileViewURL builds the permission-gated view URL of an uploaded file.
	FileViewURL(fileID string) string
}
