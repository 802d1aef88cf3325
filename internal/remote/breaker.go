// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/arcent/internal/adapter"
)

// OrderingBreaker remembers that server-side ordering is unavailable. It
// trips at most once and never resets.
type OrderingBreaker struct {
	tripped atomic.Bool
}

// OrderingSupported reports whether ordered queries may still be sent.
func (b *OrderingBreaker) OrderingSupported() bool {
	return !b.tripped.Load()
}

// Trip disables ordering. It reports whether this call did the switch.
func (b *OrderingBreaker) Trip() bool {
	return b.tripped.CompareAndSwap(false, true)
}

// DocumentLister lists collection documents.
type DocumentLister interface {
	ListDocuments(ctx context.Context, queries []adapter.Query) (adapter.DocumentList, error)
}

// listDocuments runs queries, dropping ordering queries once the breaker has
// tripped. A degraded-index failure trips the breaker and the request is
// retried once without ordering; any other failure is returned as is.
func listDocuments(ctx context.Context, lister DocumentLister, breaker *OrderingBreaker, queries []adapter.Query) (adapter.DocumentList, error) {
	if !breaker.OrderingSupported() {
		return lister.ListDocuments(ctx, adapter.WithoutOrder(queries))
	}

	list, err := lister.ListDocuments(ctx, queries)
	if err == nil {
		return list, nil
	}
	if !IsDegradedIndexError(err) {
		return adapter.DocumentList{}, err
	}

	breaker.Trip()
	return lister.ListDocuments(ctx, adapter.WithoutOrder(queries))
}
