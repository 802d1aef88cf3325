// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/models"
)

const (
	// SearchPageSize is the page size of search requests.
	SearchPageSize = 100
	// SearchCap bounds the number of distinct results of one search.
	SearchCap = 800
)

// Search runs the two-phase remote search: a server-side full-text search on
// title, then, when that phase made at least one request and found nothing,
// a client-side scan of the whole collection matching title
// case-insensitively. Details are not searched remotely.
type Search struct {
	lister  DocumentLister
	breaker *OrderingBreaker
	now     func() time.Time
}

func NewSearch(lister DocumentLister, breaker *OrderingBreaker) *Search {
	return &Search{
		lister:  lister,
		breaker: breaker,
		now:     time.Now,
	}
}

// Search returns at most SearchCap achievements, newest first. A blank query
// returns an empty list without any request. Request failures are returned
// to the caller.
func (s *Search) Search(ctx context.Context, query string) ([]models.Achievement, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Achievement{}, nil
	}

	hits, requests, err := s.collect(ctx, func(cursor string) []adapter.Query {
		return s.queries(cursor, adapter.Search(fieldTitle, query))
	}, nil)
	if err != nil {
		return nil, err
	}

	if requests > 0 && hits.len() == 0 {
		needle := strings.ToLower(query)
		hits, _, err = s.collect(ctx, func(cursor string) []adapter.Query {
			return s.queries(cursor)
		}, func(a models.Achievement) bool {
			return strings.Contains(strings.ToLower(a.Title), needle)
		})
		if err != nil {
			return nil, err
		}
	}

	list := hits.values()
	sortByAchievedAtDesc(list)
	return list, nil
}

// collect pages through the collection with cursorAfter until a short page
// or the cap, keeping documents accepted by keep (all when nil).
func (s *Search) collect(
	ctx context.Context,
	build func(cursor string) []adapter.Query,
	keep func(models.Achievement) bool,
) (*orderedSet, int, error) {
	out := newOrderedSet()
	requests := 0
	cursor := ""

	for {
		list, err := listDocuments(ctx, s.lister, s.breaker, build(cursor))
		if err != nil {
			return nil, requests, err
		}
		requests++

		now := s.now()
		for _, doc := range list.Documents {
			a := toAchievement(doc, now)
			if keep != nil && !keep(a) {
				continue
			}
			if out.len() < SearchCap {
				out.put(a)
			}
		}

		docs := list.Documents
		if len(docs) != SearchPageSize || out.len() >= SearchCap {
			return out, requests, nil
		}
		cursor = docs[len(docs)-1].ID
	}
}

func (s *Search) queries(cursor string, extra ...adapter.Query) []adapter.Query {
	qs := append([]adapter.Query{}, extra...)
	if s.breaker.OrderingSupported() {
		qs = append(qs, adapter.OrderDesc(fieldAchievedAt))
	}
	qs = append(qs, adapter.Limit(SearchPageSize))
	if cursor != "" {
		qs = append(qs, adapter.CursorAfter(cursor))
	}
	return qs
}

// orderedSet dedupes achievements by id, keeping first-seen order and the
// latest value.
type orderedSet struct {
	index map[string]int
	items []models.Achievement
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]int)}
}

func (s *orderedSet) put(a models.Achievement) {
	if i, ok := s.index[a.ID]; ok {
		s.items[i] = a
		return
	}
	s.index[a.ID] = len(s.items)
	s.items = append(s.items, a)
}

func (s *orderedSet) len() int {
	return len(s.items)
}

func (s *orderedSet) values() []models.Achievement {
	out := make([]models.Achievement, len(s.items))
	copy(out, s.items)
	return out
}
