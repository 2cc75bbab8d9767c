// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MainnetID uint32 = 1
	DevnetID  uint32 = 2
	LocalID   uint32 = 12345

	MainnetName = "mainnet"
	DevnetName  = "devnet"
	LocalName   = "local"
)

var (
	NetworkIDToNetworkName = map[uint32]string{
		MainnetID: MainnetName,
		DevnetID:  DevnetName,
		LocalID:   LocalName,
	}
	NetworkNameToNetworkID = map[string]uint32{
		MainnetName: MainnetID,
		DevnetName:  DevnetID,
		LocalName:   LocalID,
	}

	ValidNetworkPrefix = "network-"

	ErrParseNetworkName = errors.New("failed to parse network name")
)

// NetworkName returns a human readable name for the network with
// ID [networkID]
func NetworkName(networkID uint32) string {
	if name, exists := NetworkIDToNetworkName[networkID]; exists {
		return name
	}
	return fmt.Sprintf("network-%d", networkID)
}

// NetworkID returns the ID of the network with name [networkName]
func NetworkID(networkName string) (uint32, error) {
	networkName = strings.ToLower(networkName)
	if id, exists := NetworkNameToNetworkID[networkName]; exists {
		return id, nil
	}

	idStr := networkName
	if strings.HasPrefix(networkName, ValidNetworkPrefix) {
		idStr = networkName[len(ValidNetworkPrefix):]
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseNetworkName, networkName)
	}
	return uint32(id), nil
}

// IsProduction reports whether funds on [networkID] are real. Operator
// conveniences such as airdrops are refused on production networks.
func IsProduction(networkID uint32) bool {
	return networkID == MainnetID
}
