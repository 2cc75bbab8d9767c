// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/LAVASoftWorks/vkct-core/database/factory"
	"github.com/LAVASoftWorks/vkct-core/genesis"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/address"
)

var (
	errInvalidPort            = errors.New("http-port must be in [0, 65535]")
	errInvalidHealthCheckFreq = errors.New("health-check-frequency must be positive")
)

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Host           string   `json:"host"`
	Port           uint16   `json:"port"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

// Config is the fully parsed configuration of a vkct process.
type Config struct {
	NetworkID uint32 `json:"networkID"`

	// GenesisFile is empty when the built-in genesis of [NetworkID] is used.
	GenesisFile string `json:"genesisFile"`

	DatabaseConfig factory.DatabaseConfig `json:"databaseConfig"`
	LoggingConfig  logging.Config         `json:"loggingConfig"`
	LedgerConfig   ledger.Config          `json:"ledgerConfig"`
	VMConfig       registryvm.Config      `json:"vmConfig"`
	HTTPConfig     HTTPConfig             `json:"httpConfig"`

	HealthCheckFreq time.Duration `json:"healthCheckFrequency"`

	// Keypair is the key file transactions are signed with.
	Keypair string `json:"keypair"`
	// URI of a remote node. Empty means the local database is used.
	URI string `json:"uri"`
}

// Genesis returns the genesis the ledger is bootstrapped with.
func (c *Config) Genesis() (*genesis.Config, error) {
	if c.GenesisFile == "" {
		return genesis.GetConfig(c.NetworkID), nil
	}
	return genesis.FromFile(c.NetworkID, c.GenesisFile)
}

// GetConfig sets attributes on a [Config] based on the values defined in the
// [viper] environment.
func GetConfig(v *viper.Viper) (Config, error) {
	networkID, err := constants.NetworkID(v.GetString(NetworkNameKey))
	if err != nil {
		return Config{}, err
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	vmConfig, err := getVMConfig(v, networkID)
	if err != nil {
		return Config{}, err
	}

	httpConfig, err := getHTTPConfig(v)
	if err != nil {
		return Config{}, err
	}

	healthCheckFreq := v.GetDuration(HealthCheckFreqKey)
	if healthCheckFreq <= 0 {
		return Config{}, errInvalidHealthCheckFreq
	}

	return Config{
		NetworkID:   networkID,
		GenesisFile: getExpandedArg(v, GenesisFileKey),
		DatabaseConfig: factory.DatabaseConfig{
			Name:     v.GetString(DBTypeKey),
			Path:     getExpandedArg(v, DBPathKey),
			ReadOnly: v.GetBool(DBReadOnlyKey),
		},
		LoggingConfig: loggingConfig,
		LedgerConfig: ledger.Config{
			DepositPerByte: v.GetUint64(DepositPerByteKey),
		},
		VMConfig:        vmConfig,
		HTTPConfig:      httpConfig,
		HealthCheckFreq: healthCheckFreq,
		Keypair:         getExpandedArg(v, KeypairKey),
		URI:             v.GetString(URIKey),
	}, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = getExpandedArg(v, LogsDirKey)

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.GetString(LogDisplayLevelKey) != "" {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.DisableWriterDisplaying = v.GetBool(LogDisableDisplayKey)
	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressEnabledKey)
	return loggingConfig, nil
}

func getVMConfig(v *viper.Viper, networkID uint32) (registryvm.Config, error) {
	programID, err := ids.FromString(v.GetString(ProgramIDKey))
	if err != nil {
		return registryvm.Config{}, fmt.Errorf("couldn't parse %s: %w", ProgramIDKey, err)
	}

	seedVersion := v.GetString(SeedVersionKey)
	if _, err := address.SeedsFor(seedVersion); err != nil {
		return registryvm.Config{}, err
	}

	return registryvm.Config{
		NetworkID:                  networkID,
		ProgramID:                  programID,
		SeedVersion:                seedVersion,
		TokenRegistryCapacity:      v.GetUint32(TokenRegistryCapacityKey),
		CollectionRegistryCapacity: v.GetUint32(CollectionRegistryCapacityKey),
	}, nil
}

func getHTTPConfig(v *viper.Viper) (HTTPConfig, error) {
	port := v.GetUint(HTTPPortKey)
	if port > math.MaxUint16 {
		return HTTPConfig{}, fmt.Errorf("%w: %d", errInvalidPort, port)
	}
	return HTTPConfig{
		Host:           v.GetString(HTTPHostKey),
		Port:           uint16(port),
		AllowedOrigins: v.GetStringSlice(HTTPAllowedOrigins),
	}, nil
}
