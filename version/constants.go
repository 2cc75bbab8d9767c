// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "vkct"

var (
	Current = &Application{
		Name:  Client,
		Major: 1,
		Minor: 0,
		Patch: 0,
	}

	// CurrentDatabase is the layout version written next to the ledger.
	CurrentDatabase = &Semantic{
		Major: 1,
		Minor: 0,
		Patch: 0,
	}

	// GitCommit is set by the build script
	GitCommit string
)
