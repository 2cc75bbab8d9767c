// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

//go:generate mockgen -package=${GOPACKAGE} -destination=mock_client.go github.com/LAVASoftWorks/vkct-core/vms/registryvm/api Client
