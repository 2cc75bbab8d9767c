// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type namedHandler string

func (n namedHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte(n))
}

func serve(t *testing.T, r *router, url string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, url, nil))
	return rec.Code, rec.Body.String()
}

func TestProgramAliasServesRegistry(t *testing.T) {
	require := require.New(t)

	r := newRouter()
	require.NoError(r.AddRouter("/ext/bc/registry", "", namedHandler("registry")))
	require.NoError(r.AddAlias("/ext/bc/registry", "/ext/bc/program"))

	code, body := serve(t, r, "/ext/bc/program")
	require.Equal(http.StatusOK, code)
	require.Equal("registry", body)

	// Endpoints added after the alias are mirrored too.
	require.NoError(r.AddRouter("/ext/bc/registry", "/status", namedHandler("status")))
	code, body = serve(t, r, "/ext/bc/program/status")
	require.Equal(http.StatusOK, code)
	require.Equal("status", body)

	handler, err := r.GetHandler("/ext/bc/program", "/status")
	require.NoError(err)
	require.Equal(namedHandler("status"), handler)
}

func TestAliasChains(t *testing.T) {
	require := require.New(t)

	r := newRouter()
	require.NoError(r.AddAlias("registry", "program", "vault"))
	require.NoError(r.AddAlias("registry", "tokens"))
	require.NoError(r.AddAlias("root", "registry"))
	require.NoError(r.AddAlias("vault", "nft"))
	err := r.AddAlias("info", "tokens")
	require.ErrorIs(err, errAlreadyReserved)

	err = r.AddRouter("program", "", namedHandler("registry"))
	require.ErrorIs(err, errAlreadyReserved)
	require.NoError(r.AddRouter("root", "", namedHandler("root")))

	handler, err := r.GetHandler("registry", "")
	require.NoError(err)
	require.Equal(namedHandler("root"), handler)

	require.NoError(r.AddAlias("root", "info"))
	handler, err = r.GetHandler("info", "")
	require.NoError(err)
	require.Equal(namedHandler("root"), handler)
}

func TestSelfAliasBlocksRoute(t *testing.T) {
	require := require.New(t)

	r := newRouter()
	require.NoError(r.AddAlias("health", "health"))

	err := r.AddRouter("health", "", namedHandler("health"))
	require.ErrorIs(err, errAlreadyReserved)
}

func TestUnknownRoutes(t *testing.T) {
	require := require.New(t)

	r := newRouter()
	require.NoError(r.AddRouter("/ext/info", "", namedHandler("info")))

	_, err := r.GetHandler("/ext/metrics", "")
	require.ErrorIs(err, errUnknownBaseURL)

	_, err = r.GetHandler("/ext/info", "/peers")
	require.ErrorIs(err, errUnknownEndpoint)

	err = r.AddRouter("/ext/info", "", namedHandler("again"))
	require.ErrorContains(err, "already exists")

	code, _ := serve(t, r, "/ext/health")
	require.Equal(http.StatusNotFound, code)
}
