// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/utils/logging"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func TestServerRoutes(t *testing.T) {
	require := require.New(t)

	accessLog := &syncBuffer{}
	s, err := New(logging.NoLog{}, Config{
		Host:           "127.0.0.1",
		AllowedOrigins: []string{"*"},
		AccessLog:      accessLog,
	})
	require.NoError(err)

	require.NoError(s.AddRoute(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("registry"))
	}), "bc/registry", ""))
	require.NoError(s.AddAliases("bc/registry", "bc/program"))
	require.ErrorIs(s.AddAliases("bc/other", "bc/program"), errAlreadyReserved)

	errs := make(chan error, 1)
	go func() {
		errs <- s.Dispatch()
	}()

	for _, path := range []string{"/ext/bc/registry", "/ext/bc/program"} {
		resp, err := http.Get(fmt.Sprintf("http://%s%s", s.Addr(), path))
		require.NoError(err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(err)
		require.NoError(resp.Body.Close())
		require.Equal(http.StatusOK, resp.StatusCode)
		require.Equal("registry", string(body))
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/ext/unknown", s.Addr()))
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusNotFound, resp.StatusCode)

	require.NoError(s.Shutdown())
	require.NoError(<-errs)
	require.Contains(accessLog.String(), "GET /ext/bc/registry")
}
