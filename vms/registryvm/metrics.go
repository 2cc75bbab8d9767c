// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registryvm

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"
)

const (
	opLabel     = "op"
	statusLabel = "status"

	acceptedStatus = "accepted"
	rejectedStatus = "rejected"
)

type metrics struct {
	txs      *prometheus.CounterVec
	airdrops prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txs",
				Help: "number of registry transactions by operation and outcome",
			},
			[]string{opLabel, statusLabel},
		),
		airdrops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "airdrops",
			Help: "number of airdrops credited to the ledger",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.txs),
		reg.Register(m.airdrops),
	)
	return m, errs.Err
}

func (m *metrics) observe(utx txs.Unsigned, err error) {
	status := acceptedStatus
	if err != nil {
		status = rejectedStatus
	}
	m.txs.With(prometheus.Labels{
		opLabel:     opName(utx),
		statusLabel: status,
	}).Inc()
}

func opName(utx txs.Unsigned) string {
	switch utx.(type) {
	case *txs.Initialize:
		return "initialize"
	case *txs.AddEntry:
		return "add_entry"
	case *txs.SetPause:
		return "set_pause"
	case *txs.Close:
		return "close"
	default:
		return "unknown"
	}
}
