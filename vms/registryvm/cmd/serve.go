// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LAVASoftWorks/vkct-core/api/health"
	"github.com/LAVASoftWorks/vkct-core/api/info"
	"github.com/LAVASoftWorks/vkct-core/api/metrics"
	"github.com/LAVASoftWorks/vkct-core/api/server"
	"github.com/LAVASoftWorks/vkct-core/config"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/api"
)

var errServerPanicked = errors.New("API server panicked")

const (
	registryBase  = "bc/registry"
	accessLogName = "http.log"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the registry API, metrics and health endpoints on the local database",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := getConfig(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, nil)
		},
	}
}

// serve runs the API of a local node until [ctx] is done. If provided,
// [listening] is called with the address of the server before it starts
// accepting requests.
func serve(ctx context.Context, cfg config.Config, listening func(net.Addr)) error {
	n, err := newNode(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := n.Close(); err != nil {
			n.log.Error("failed to close node",
				zap.Error(err),
			)
		}
	}()

	h, err := health.New(n.log, n.registry)
	if err != nil {
		return err
	}
	if err := h.RegisterCheck("database", n.db); err != nil {
		return err
	}
	if err := h.RegisterCheck("registry", n.vm); err != nil {
		return err
	}

	var accessLog io.WriteCloser
	if cfg.LoggingConfig.Directory != "" {
		accessLog = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LoggingConfig.Directory, accessLogName),
			MaxSize:    cfg.LoggingConfig.MaxSize,
			MaxAge:     cfg.LoggingConfig.MaxAge,
			MaxBackups: cfg.LoggingConfig.MaxFiles,
			Compress:   cfg.LoggingConfig.Compress,
		}
		defer accessLog.Close()
	}

	srv, err := server.New(n.log, server.Config{
		Host:           cfg.HTTPConfig.Host,
		Port:           cfg.HTTPConfig.Port,
		AllowedOrigins: cfg.HTTPConfig.AllowedOrigins,
		AccessLog:      accessLog,
	})
	if err != nil {
		return err
	}

	registryHandler, err := api.NewHandler(n.vm, n.log)
	if err != nil {
		return err
	}
	infoHandler, err := info.NewHandler(info.Parameters{
		NetworkID:   cfg.NetworkID,
		ProgramID:   cfg.VMConfig.ProgramID,
		SeedVersion: cfg.VMConfig.SeedVersion,
	}, n.log)
	if err != nil {
		return err
	}

	routes := []struct {
		handler http.Handler
		base    string
	}{
		{handler: registryHandler, base: registryBase},
		{handler: infoHandler, base: "info"},
		{handler: h, base: "health"},
		{handler: metrics.NewHandler(n.registry), base: "metrics"},
	}
	for _, route := range routes {
		if err := srv.AddRoute(route.handler, route.base, ""); err != nil {
			_ = srv.Shutdown()
			return err
		}
	}
	// The registry is also reachable under the program it serves.
	if err := srv.AddAliases(registryBase, "bc/"+cfg.VMConfig.ProgramID.String()); err != nil {
		_ = srv.Shutdown()
		return err
	}

	if listening != nil {
		listening(srv.Addr())
	}

	h.Start(ctx, cfg.HealthCheckFreq)
	defer h.Stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		n.log.RecoverAndExit(
			func() { err = srv.Dispatch() },
			func() { err = errServerPanicked },
		)
		return err
	})
	eg.Go(func() error {
		<-ctx.Done()
		n.log.Info("shutting down API server")
		return srv.Shutdown()
	})
	return eg.Wait()
}
