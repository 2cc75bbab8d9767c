// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestGetMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registry_txs",
		Help: "number of transactions",
	})
	require.NoError(registry.Register(counter))
	counter.Add(3)

	mux := http.NewServeMux()
	mux.Handle(Endpoint, NewHandler(registry))
	server := httptest.NewServer(mux)
	defer server.Close()

	families, err := NewClient(server.URL).GetMetrics(context.Background())
	require.NoError(err)
	txs, ok := Sum(families, "registry_txs")
	require.True(ok)
	require.Equal(float64(3), txs)

	_, ok = Sum(families, "registry_missing")
	require.False(ok)

	// The scrape counter is registered in the same registry.
	require.Contains(families, "promhttp_metric_handler_requests_total")
}

func TestGetMetricsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewClient(server.URL).GetMetrics(context.Background())
	require.ErrorIs(t, err, errUnexpectedStatus)
}
