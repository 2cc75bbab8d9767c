// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/database/corruptabledb"
	"github.com/LAVASoftWorks/vkct-core/database/leveldb"
	"github.com/LAVASoftWorks/vkct-core/database/memdb"
	"github.com/LAVASoftWorks/vkct-core/database/meterdb"
	"github.com/LAVASoftWorks/vkct-core/database/pebbledb"
	"github.com/LAVASoftWorks/vkct-core/database/versiondb"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
)

type DatabaseConfig struct {
	// If true, all writes are to memory and are discarded at shutdown.
	ReadOnly bool `json:"readOnly"`

	// Path to database
	Path string `json:"path"`

	// Name of the database type to use
	Name string `json:"name"`

	// Backend specific JSON config
	Config []byte `json:"-"`
}

// NewDatabase creates a new database instance based on the provided
// configuration. It supports LevelDB, MemDB, and PebbleDB as database types.
// The backend is wrapped with a corruptable DB and a meter DB whose metrics are
// registered on [reg].
func NewDatabase(dbConfig DatabaseConfig, reg prometheus.Registerer, log logging.Logger) (database.Database, error) {
	var (
		db  database.Database
		err error
	)
	switch dbConfig.Name {
	case leveldb.Name:
		db, err = leveldb.New(dbConfig.Path, dbConfig.Config, log)
		if err != nil {
			return nil, fmt.Errorf("couldn't create %s at %s: %w", leveldb.Name, dbConfig.Path, err)
		}
	case memdb.Name:
		db = memdb.New()
	case pebbledb.Name:
		db, err = pebbledb.New(dbConfig.Path, dbConfig.Config, log)
		if err != nil {
			return nil, fmt.Errorf("couldn't create %s at %s: %w", pebbledb.Name, dbConfig.Path, err)
		}
	default:
		return nil, fmt.Errorf(
			"db-type was %q but should have been one of {%s, %s, %s}",
			dbConfig.Name,
			leveldb.Name,
			memdb.Name,
			pebbledb.Name,
		)
	}

	db = corruptabledb.New(db)

	if dbConfig.ReadOnly && dbConfig.Name != memdb.Name {
		db = &readOnlyDatabase{
			Database: versiondb.New(db),
			base:     db,
		}
	}

	db, err = meterdb.New(reg, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create meterdb: %w", err)
	}
	return db, nil
}

// readOnlyDatabase keeps every write in memory and releases the on-disk
// backend when closed.
type readOnlyDatabase struct {
	*versiondb.Database
	base database.Database
}

func (db *readOnlyDatabase) Close() error {
	errs := wrappers.Errs{}
	errs.Add(
		db.Database.Close(),
		db.base.Close(),
	)
	return errs.Err
}
