// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/arcent/models"
)

// disabledAdapter stands in when no endpoint is configured. Every call fails
// with ErrRemoteNotConfigured, so remote operations degrade like any other
// remote failure while local mode keeps working.
type disabledAdapter struct {
	mu      sync.RWMutex
	session string
}

func NewDisabledAdapter() BaaSAdapter {
	return &disabledAdapter{}
}

func (d *disabledAdapter) SetSession(secret string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session = secret
}

func (d *disabledAdapter) Session() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.session
}

func (d *disabledAdapter) GetAccount(context.Context) (models.Account, error) {
	return models.Account{}, ErrRemoteNotConfigured
}

func (d *disabledAdapter) ListDocuments(context.Context, []Query) (DocumentList, error) {
	return DocumentList{}, ErrRemoteNotConfigured
}

func (d *disabledAdapter) CreateDocument(context.Context, string, map[string]any, []string) (Document, error) {
	return Document{}, ErrRemoteNotConfigured
}

func (d *disabledAdapter) UpdateDocument(context.Context, string, map[string]any, []string) (Document, error) {
	return Document{}, ErrRemoteNotConfigured
}

func (d *disabledAdapter) DeleteDocument(context.Context, string) error {
	return ErrRemoteNotConfigured
}

func (d *disabledAdapter) CreateFile(context.Context, string, models.Photo, []string) (File, error) {
	return File{}, ErrRemoteNotConfigured
}

func (d *disabledAdapter) CreateExecution(context.Context, string) (Execution, error) {
	return Execution{}, ErrRemoteNotConfigured
}

func (d *disabledAdapter) FileViewURL(string) string {
	return ""
}
