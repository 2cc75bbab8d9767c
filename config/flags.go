// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/LAVASoftWorks/vkct-core/database/leveldb"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/address"
)

const (
	DefaultHTTPPort = 9650

	// EnvPrefix is prepended to every flag when it is read from the
	// environment. For example, --http-port can be set with VKCT_HTTP_PORT.
	EnvPrefix = "vkct"
)

var (
	// [defaultUnexpandedDataDir] should be used as the default value for
	// flags. It keeps [$HOME] unexpanded so the help text is portable.
	defaultUnexpandedDataDir = filepath.Join("$HOME", "."+constants.AppName)

	defaultDBDir   = filepath.Join("${"+DataDirKey+"}", "db")
	defaultLogDir  = filepath.Join("${"+DataDirKey+"}", "logs")
	defaultKeypair = filepath.Join("${"+DataDirKey+"}", "keypair.json")
)

// AddFlags adds every configuration flag to [fs].
func AddFlags(fs *pflag.FlagSet) {
	// Config file
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Ignored if %s is specified", ConfigFileKey))

	fs.String(DataDirKey, defaultUnexpandedDataDir, "Sets the base data directory where default sub-directories will be placed unless otherwise specified.")

	// Network ID
	fs.String(NetworkNameKey, constants.LocalName, "Network ID this node will connect to")

	// Genesis
	fs.String(GenesisFileKey, "", fmt.Sprintf("Specifies a genesis config file. Only valid on non-production networks, defaults to the built-in genesis of %s", NetworkNameKey))

	// Database
	fs.String(DBTypeKey, leveldb.Name, "Database type to use. Must be one of {leveldb, memdb, pebbledb}")
	fs.String(DBPathKey, defaultDBDir, "Path to database directory")
	fs.Bool(DBReadOnlyKey, false, "If true, database writes are to memory and never persisted. May still initialize database directory/files on disk if they don't exist")

	// Program
	fs.String(ProgramIDKey, registryvm.DefaultProgramID.String(), "Program that owns the registry accounts")
	fs.String(SeedVersionKey, address.DefaultSeedVersion, fmt.Sprintf("Registry address seeds. Must be one of %v", address.SeedVersions()))
	fs.Uint32(TokenRegistryCapacityKey, registryvm.DefaultRegistryCapacity, "Number of entries a token registry is provisioned with")
	fs.Uint32(CollectionRegistryCapacityKey, registryvm.DefaultRegistryCapacity, "Number of entries a collection registry is provisioned with")
	fs.Uint64(DepositPerByteKey, ledger.DefaultDepositPerByte, "Deposit charged per byte of account storage")

	// Logging
	fs.String(LogsDirKey, defaultLogDir, "Logging directory")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated.")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files.")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files.")
	fs.Bool(LogRotaterCompressEnabledKey, false, "Enables the compression of rotated log files through gzip.")
	fs.Bool(LogDisableDisplayKey, false, "Disables displaying logs in stdout.")

	// HTTP APIs
	fs.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	fs.Uint(HTTPPortKey, DefaultHTTPPort, "Port of the HTTP server")
	fs.StringSlice(HTTPAllowedOrigins, []string{"*"}, "Origins to allow on the HTTP port. Example: https://*.registry.example")

	// Health
	fs.Duration(HealthCheckFreqKey, 30*time.Second, "Time between health checks")

	// Client
	fs.String(KeypairKey, defaultKeypair, "Key file of the identity signing transactions")
	fs.String(URIKey, "", "API URI of a running node. If empty, commands operate on the local database")
}

// BuildFlagSet returns a complete set of flags
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// BuildViper returns the viper environment from the already parsed [fs], the
// environment and the config file, in decreasing order of precedence.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		filename := getExpandedArg(v, ConfigFileKey)
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// getExpandedArg gets the string in viper corresponding to [key] and expands
// any variables using the OS env. If the [DataDirKey] var is used, it will
// also be expanded.
func getExpandedArg(v *viper.Viper, key string) string {
	return getExpandedString(v, v.GetString(key))
}

func getExpandedString(v *viper.Viper, s string) string {
	return os.Expand(
		s,
		func(strVar string) string {
			if strVar == DataDirKey {
				return os.ExpandEnv(v.GetString(DataDirKey))
			}
			return os.Getenv(strVar)
		},
	)
}
