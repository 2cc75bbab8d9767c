// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/utils/logging"
)

const (
	baseURL = "/ext"

	readHeaderTimeout     = 10 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

// Server maintains the HTTP router
type Server struct {
	log logging.Logger
	// Maps endpoints to handlers
	router *router
	// Listens for HTTP traffic
	listener net.Listener
	srv      *http.Server
}

type Config struct {
	Host           string
	Port           uint16
	AllowedOrigins []string
	// AccessLog receives one combined log line per request. May be nil.
	AccessLog io.Writer
}

// New binds the API server to the configured address. Routes can be added
// until Dispatch is called.
func New(log logging.Logger, config Config) (*Server, error) {
	listenAddress := net.JoinHostPort(config.Host, strconv.Itoa(int(config.Port)))
	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return nil, fmt.Errorf("couldn't listen on %s: %w", listenAddress, err)
	}

	router := newRouter()
	log.Info("API created",
		zap.Strings("allowedOrigins", config.AllowedOrigins),
	)
	var handler http.Handler = gziphandler.GzipHandler(cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowCredentials: true,
	}).Handler(router))
	if config.AccessLog != nil {
		handler = handlers.CombinedLoggingHandler(config.AccessLog, handler)
	}

	return &Server{
		log:      log,
		router:   router,
		listener: listener,
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Addr is the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// AddRoute serves [handler] at /ext/[base][endpoint].
func (s *Server) AddRoute(handler http.Handler, base, endpoint string) error {
	url := fmt.Sprintf("%s/%s", baseURL, base)
	s.log.Info("adding route",
		zap.String("url", url),
		zap.String("endpoint", endpoint),
	)
	return s.router.AddRouter(url, endpoint, handler)
}

// AddAliases serves every route of [endpoint] under [aliases] as well.
func (s *Server) AddAliases(endpoint string, aliases ...string) error {
	url := fmt.Sprintf("%s/%s", baseURL, endpoint)
	endpoints := make([]string, len(aliases))
	for i, alias := range aliases {
		endpoints[i] = fmt.Sprintf("%s/%s", baseURL, alias)
	}
	return s.router.AddAlias(url, endpoints...)
}

// Dispatch serves requests until Shutdown is called.
func (s *Server) Dispatch() error {
	s.log.Info("HTTP API server listening",
		zap.Stringer("address", s.listener.Addr()),
	)
	err := s.srv.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in-flight requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
