// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/arcent/internal/adapter"
)

// corpusLister serves a fixed document collection, honouring limit and
// cursorAfter. Full-text search is answered by searchFn; ordering is
// rejected with a degraded-index error while orderErr is set.
type corpusLister struct {
	mu       sync.Mutex
	docs     []adapter.Document
	calls    [][]adapter.Query
	orderErr error
	searchFn func(title, query string) bool
	failWith error
}

func (c *corpusLister) ListDocuments(_ context.Context, queries []adapter.Query) (adapter.DocumentList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, queries)

	if c.failWith != nil {
		return adapter.DocumentList{}, c.failWith
	}
	if hasOrder(queries) && c.orderErr != nil {
		return adapter.DocumentList{}, c.orderErr
	}

	limit := 25
	cursor := ""
	search := ""
	for _, q := range queries {
		switch q.Method {
		case "limit":
			limit = q.Values[0].(int)
		case "cursorAfter":
			cursor = q.Values[0].(string)
		case "search":
			search = q.Values[0].(string)
		}
	}

	start := 0
	if cursor != "" {
		for i, d := range c.docs {
			if d.ID == cursor {
				start = i + 1
				break
			}
		}
	}

	out := []adapter.Document{}
	for _, d := range c.docs[start:] {
		if len(out) == limit {
			break
		}
		if search != "" {
			title, _ := d.Data["title"].(string)
			if c.searchFn == nil || !c.searchFn(title, search) {
				continue
			}
		}
		out = append(out, d)
	}

	return adapter.DocumentList{Total: len(c.docs), Documents: out}, nil
}

func (c *corpusLister) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *corpusLister) call(i int) []adapter.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[i]
}

func hasOrder(queries []adapter.Query) bool {
	for _, q := range queries {
		if q.IsOrder() {
			return true
		}
	}
	return false
}

func containsFold(title, query string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// makeDocs builds n documents whose achievedAt grows with the index.
func makeDocs(n int, title func(i int) string) []adapter.Document {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := make([]adapter.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, adapter.Document{
			ID: fmt.Sprintf("doc-%04d", i),
			Data: map[string]any{
				"title":      title(i),
				"achievedAt": base.Add(time.Duration(i) * time.Minute).Format(ISOLayout),
			},
		})
	}
	return docs
}

func degradedIndexErr() error {
	return &adapter.BaaSError{
		Status:  400,
		Type:    "general_query_invalid",
		Message: "Invalid query: Attribute not found in schema: achievedAt",
		Err:     adapter.ErrBadRequest,
	}
}
