// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/utils/logging"
)

var (
	_ Checker      = CheckerFunc(nil)
	_ http.Handler = (*Health)(nil)
)

// Checker can have its health checked
type Checker interface {
	// HealthCheck returns health check results and, if not healthy, a non-nil
	// error
	//
	// It is expected that the results are json marshallable.
	HealthCheck(context.Context) (interface{}, error)
}

type CheckerFunc func(context.Context) (interface{}, error)

func (f CheckerFunc) HealthCheck(ctx context.Context) (interface{}, error) {
	return f(ctx)
}

// Result is the most recent outcome of one check.
type Result struct {
	// Details of the HealthCheck.
	Details interface{} `json:"message,omitempty"`

	// Error is the string representation of the error returned by the failing
	// HealthCheck. The value is nil if the check passed.
	Error *string `json:"error,omitempty"`

	// Timestamp of the last HealthCheck.
	Timestamp time.Time `json:"timestamp,omitempty"`

	// Duration is the amount of time this HealthCheck last took to evaluate.
	Duration time.Duration `json:"duration"`

	// ContiguousFailures the HealthCheck has returned.
	ContiguousFailures int64 `json:"contiguousFailures,omitempty"`

	// TimeOfFirstFailure of the HealthCheck,
	TimeOfFirstFailure *time.Time `json:"timeOfFirstFailure,omitempty"`
}

// APIReply is the body served by the health endpoint.
type APIReply struct {
	Checks  map[string]Result `json:"checks"`
	Healthy bool              `json:"healthy"`
}

// Health periodically runs the registered checks and serves their results.
type Health struct {
	log    logging.Logger
	worker *worker
}

func New(log logging.Logger, registerer prometheus.Registerer) (*Health, error) {
	w, err := newWorker(registerer)
	return &Health{
		log:    log,
		worker: w,
	}, err
}

func (h *Health) RegisterCheck(name string, checker Checker) error {
	return h.worker.RegisterCheck(name, checker)
}

// Results returns the latest result of every check and whether all of them
// passed.
func (h *Health) Results() (map[string]Result, bool) {
	results, healthy := h.worker.Results()
	if !healthy {
		h.log.Warn("failing health check",
			zap.Reflect("reason", results),
		)
	}
	return results, healthy
}

func (h *Health) Start(ctx context.Context, freq time.Duration) {
	h.worker.Start(ctx, freq)
}

func (h *Health) Stop() {
	h.worker.Stop()
}

// ServeHTTP replies with the latest results, using 503 while any check fails.
func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	checks, healthy := h.Results()
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// If we can't write the reply, there is nothing left to do.
	_ = json.NewEncoder(w).Encode(APIReply{
		Checks:  checks,
		Healthy: healthy,
	})
}
