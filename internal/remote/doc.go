// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remote stores achievements in the BaaS document collection of the
// signed-in user.
//
// Listing tries to order by achievedAt on the server. When the collection
// lacks that index the store trips an [OrderingBreaker] and from then on
// only issues unordered queries, sorting results on the client instead.
package remote
