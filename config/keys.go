// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey                 = "config-file"
	DataDirKey                    = "data-dir"
	NetworkNameKey                = "network-id"
	GenesisFileKey                = "genesis-file"
	DBTypeKey                     = "db-type"
	DBPathKey                     = "db-dir"
	DBReadOnlyKey                 = "db-read-only"
	ProgramIDKey                  = "program-id"
	SeedVersionKey                = "seed-version"
	TokenRegistryCapacityKey      = "token-registry-capacity"
	CollectionRegistryCapacityKey = "collection-registry-capacity"
	DepositPerByteKey             = "deposit-per-byte"
	LogsDirKey                    = "log-dir"
	LogLevelKey                   = "log-level"
	LogDisplayLevelKey            = "log-display-level"
	LogFormatKey                  = "log-format"
	LogRotaterMaxSizeKey          = "log-rotater-max-size"
	LogRotaterMaxFilesKey         = "log-rotater-max-files"
	LogRotaterMaxAgeKey           = "log-rotater-max-age"
	LogRotaterCompressEnabledKey  = "log-rotater-compress-enabled"
	LogDisableDisplayKey          = "log-disable-display"
	HTTPHostKey                   = "http-host"
	HTTPPortKey                   = "http-port"
	HTTPAllowedOrigins            = "http-allowed-origins"
	HealthCheckFreqKey            = "health-check-frequency"
	KeypairKey                    = "keypair"
	URIKey                        = "uri"
)
