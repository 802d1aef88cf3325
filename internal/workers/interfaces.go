// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs: the database file
// watcher and the optional status server. A Workers aggregate starts them
// together and waits for all of them to stop.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the job fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// DBWatcher is satisfied by the store's database file watcher.
type DBWatcher interface {
	Watch(ctx context.Context) error
}

// StatusServer is satisfied by the status HTTP server.
type StatusServer interface {
	RunServer(ctx context.Context) error
	Addr() string
}
