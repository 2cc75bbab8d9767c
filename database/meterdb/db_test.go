// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database/dbtest"
	"github.com/LAVASoftWorks/vkct-core/database/memdb"
)

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			db, err := New(prometheus.NewRegistry(), memdb.New())
			require.NoError(t, err)

			test(t, db)
		})
	}
}

func TestCallsAreCounted(t *testing.T) {
	require := require.New(t)

	db, err := New(prometheus.NewRegistry(), memdb.New())
	require.NoError(err)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	_, err = db.Get([]byte("k"))
	require.NoError(err)
	_, err = db.Get([]byte("k"))
	require.NoError(err)

	require.InDelta(1, testutil.ToFloat64(db.calls.WithLabelValues(putOp)), 0)
	require.InDelta(2, testutil.ToFloat64(db.calls.WithLabelValues(getOp)), 0)
	require.InDelta(4, testutil.ToFloat64(db.size.WithLabelValues(getOp)), 0)
}

func TestDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, memdb.New())
	require.NoError(t, err)

	_, err = New(reg, memdb.New())
	require.Error(t, err)
}
