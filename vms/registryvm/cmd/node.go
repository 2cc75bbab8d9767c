// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/api/info"
	"github.com/LAVASoftWorks/vkct-core/config"
	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/database/factory"
	"github.com/LAVASoftWorks/vkct-core/database/prefixdb"
	"github.com/LAVASoftWorks/vkct-core/genesis"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
	"github.com/LAVASoftWorks/vkct-core/version"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/api"
)

const (
	dbMetricsPrefix = "db"
	vmMetricsPrefix = "registry"
)

var (
	errIncompatibleDatabase = errors.New("incompatible database layout")

	databaseVersionKey = []byte("databaseVersion")
)

// node is a registry VM running on the local database.
type node struct {
	logFactory logging.Factory
	log        logging.Logger
	registry   *prometheus.Registry
	db         database.Database
	ledger     *ledger.Ledger
	vm         *registryvm.VM
}

func newNode(ctx context.Context, cfg config.Config) (*node, error) {
	logFactory := logging.NewFactory(cfg.LoggingConfig)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("couldn't initialize log: %w", err)
	}

	n := &node{
		logFactory: logFactory,
		log:        log,
		registry:   prometheus.NewRegistry(),
	}
	if err := n.initialize(ctx, cfg); err != nil {
		log.Error("couldn't start node",
			zap.Error(err),
		)
		_ = n.Close()
		return nil, err
	}
	return n, nil
}

func (n *node) initialize(ctx context.Context, cfg config.Config) error {
	n.log.Info("initializing node",
		zap.Stringer("version", version.Current),
		zap.String("network", constants.NetworkName(cfg.NetworkID)),
		zap.Reflect("databaseConfig", cfg.DatabaseConfig),
	)

	g, err := cfg.Genesis()
	if err != nil {
		return err
	}

	n.db, err = factory.NewDatabase(
		cfg.DatabaseConfig,
		prometheus.WrapRegistererWithPrefix(dbMetricsPrefix+"_", n.registry),
		n.log,
	)
	if err != nil {
		return err
	}

	if err := checkDatabaseVersion(n.db); err != nil {
		return err
	}

	// Accounts are namespaced by the database layout version so a future
	// layout can be migrated next to the current one.
	ledgerDB := prefixdb.New([]byte(version.CurrentDatabase.String()), n.db)
	n.ledger = ledger.New(ledgerDB, cfg.LedgerConfig, n.log)
	applied, err := genesis.Apply(ctx, n.ledger, g)
	if err != nil {
		return fmt.Errorf("couldn't apply genesis: %w", err)
	}
	if applied {
		n.log.Info("applied genesis",
			logging.UserString("message", g.Message),
			zap.Int("numAllocations", len(g.Allocations)),
		)
	}

	n.vm, err = registryvm.New(
		cfg.VMConfig,
		n.ledger,
		prometheus.WrapRegistererWithPrefix(vmMetricsPrefix+"_", n.registry),
		n.log,
	)
	return err
}

// checkDatabaseVersion stamps a fresh database with the current layout
// version and refuses one written by a different major layout.
func checkDatabaseVersion(db database.Database) error {
	stored, err := db.Get(databaseVersionKey)
	if errors.Is(err, database.ErrNotFound) {
		return db.Put(databaseVersionKey, []byte(version.CurrentDatabase.String()))
	}
	if err != nil {
		return err
	}
	v, err := version.Parse(string(stored))
	if err != nil {
		return fmt.Errorf("%w: %w", errIncompatibleDatabase, err)
	}
	if v.Major != version.CurrentDatabase.Major {
		return fmt.Errorf("%w: found %s, expected %s", errIncompatibleDatabase, v, version.CurrentDatabase)
	}
	return nil
}

// Client returns an API client served by the in-process VM.
func (n *node) Client() api.Client {
	return api.NewLocalClient(n.vm)
}

func (n *node) Close() error {
	errs := wrappers.Errs{}
	if n.db != nil {
		errs.Add(n.db.Close())
	}
	n.logFactory.Close()
	return errs.Err
}

// Backend opens the client a command is executed against. The returned func
// releases the resources held by the client.
type Backend func(ctx context.Context, cfg config.Config) (api.Client, func() error, error)

// DefaultBackend talks to the node at [cfg.URI], or runs the VM on the local
// database when no URI is configured.
func DefaultBackend(ctx context.Context, cfg config.Config) (api.Client, func() error, error) {
	if cfg.URI != "" {
		if err := checkNodeVersion(ctx, cfg.URI); err != nil {
			return nil, nil, err
		}
		return api.NewClient(cfg.URI), func() error { return nil }, nil
	}

	// Command output goes to stdout, so local logs only go to the log files.
	cfg.LoggingConfig.DisableWriterDisplaying = true
	n, err := newNode(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return n.Client(), n.Close, nil
}

// checkNodeVersion refuses to talk to a node running a different major
// version of the transaction format.
func checkNodeVersion(ctx context.Context, uri string) error {
	reply, err := info.NewClient(uri).GetNodeVersion(ctx)
	if err != nil {
		return fmt.Errorf("couldn't reach %s: %w", uri, err)
	}
	remote, err := version.ParseApplication(reply.Version)
	if err != nil {
		return err
	}
	return version.Current.Compatible(remote)
}
