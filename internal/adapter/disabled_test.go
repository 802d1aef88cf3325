// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/arcent/models"
)

func TestDisabledAdapter(t *testing.T) {
	ctx := context.Background()
	a := NewDisabledAdapter()

	a.SetSession("secret")
	assert.Equal(t, "secret", a.Session())

	_, err := a.GetAccount(ctx)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	_, err = a.ListDocuments(ctx, []Query{Limit(5)})
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	_, err = a.CreateDocument(ctx, "id", map[string]any{}, nil)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	_, err = a.UpdateDocument(ctx, "id", map[string]any{}, nil)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	assert.ErrorIs(t, a.DeleteDocument(ctx, "id"), ErrRemoteNotConfigured)
	_, err = a.CreateFile(ctx, "f", models.Photo{}, nil)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	_, err = a.CreateExecution(ctx, "{}")
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	assert.Empty(t, a.FileViewURL("f"))
}
