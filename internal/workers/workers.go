// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package workers manages the platform's background workers. It defines the
// Worker interface and a Workers aggregate that starts them in a unified
// way.
package workers

// Worker is implemented by any background worker. Run starts the worker's
// execution; implementations either block or spawn goroutines internally.
type Worker interface {
	Run()
}

// Workers aggregates background workers and runs them in order.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every registered worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
