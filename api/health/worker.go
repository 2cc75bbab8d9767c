// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

var (
	errDuplicateCheck = errors.New("duplicated check")
	errNotYetRun      = "not yet run"
)

// worker owns the registered checks and their latest results. A check that
// has never run counts as failing.
type worker struct {
	metrics *metrics

	lock    sync.RWMutex
	checks  map[string]Checker
	results map[string]Result

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      sync.WaitGroup
}

func newWorker(registerer prometheus.Registerer) (*worker, error) {
	m, err := newMetrics(registerer)
	return &worker{
		metrics: m,
		checks:  make(map[string]Checker),
		results: make(map[string]Result),
		stop:    make(chan struct{}),
	}, err
}

func (w *worker) RegisterCheck(name string, checker Checker) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if _, ok := w.checks[name]; ok {
		return fmt.Errorf("%w: %q", errDuplicateCheck, name)
	}
	w.checks[name] = checker
	w.results[name] = Result{Error: &errNotYetRun}
	w.updateFailing()
	return nil
}

func (w *worker) Results() (map[string]Result, bool) {
	w.lock.RLock()
	defer w.lock.RUnlock()

	healthy := true
	for _, result := range w.results {
		healthy = healthy && result.Error == nil
	}
	return maps.Clone(w.results), healthy
}

// Start runs every check once right away and then every [freq] until Stop is
// called or [ctx] is done.
func (w *worker) Start(ctx context.Context, freq time.Duration) {
	w.startOnce.Do(func() {
		w.done.Add(1)
		go func() {
			defer w.done.Done()

			ticker := time.NewTicker(freq)
			defer ticker.Stop()

			for {
				w.runChecks(ctx)
				select {
				case <-ticker.C:
				case <-w.stop:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.done.Wait()
	})
}

// runChecks evaluates the checks registered when it is called, concurrently
// and without holding the lock, then records every outcome.
func (w *worker) runChecks(ctx context.Context) {
	w.lock.RLock()
	checks := maps.Clone(w.checks)
	w.lock.RUnlock()

	var (
		eg       errgroup.Group
		outcomes sync.Map
	)
	for name, check := range checks {
		name, check := name, check
		eg.Go(func() error {
			start := time.Now()
			details, err := check.HealthCheck(ctx)
			end := time.Now()

			result := Result{
				Details:   details,
				Timestamp: end,
				Duration:  end.Sub(start),
			}
			if err != nil {
				msg := err.Error()
				result.Error = &msg
			}
			outcomes.Store(name, result)
			return nil
		})
	}
	_ = eg.Wait()

	w.lock.Lock()
	defer w.lock.Unlock()

	outcomes.Range(func(key, value any) bool {
		name := key.(string)
		w.results[name] = withFailureHistory(w.results[name], value.(Result))
		return true
	})
	w.updateFailing()
}

// withFailureHistory carries the failure streak of [prev] into [next].
func withFailureHistory(prev, next Result) Result {
	if next.Error == nil {
		return next
	}
	next.ContiguousFailures = prev.ContiguousFailures + 1
	if prev.ContiguousFailures > 0 {
		next.TimeOfFirstFailure = prev.TimeOfFirstFailure
	} else {
		failedAt := next.Timestamp
		next.TimeOfFirstFailure = &failedAt
	}
	return next
}

// Assumes [w.lock] is held.
func (w *worker) updateFailing() {
	failing := 0
	for _, result := range w.results {
		if result.Error != nil {
			failing++
		}
	}
	w.metrics.failingChecks.Set(float64(failing))
}
