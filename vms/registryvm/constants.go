// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registryvm

import (
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/version"
)

const Name = "registryvm"

var (
	// DefaultProgramID owns every registry account created by this VM.
	DefaultProgramID = ids.FromStringOrPanic("VaU1t11111111111111111111111111111111111111")

	Version = &version.Semantic{
		Major: 1,
		Minor: 0,
		Patch: 0,
	}
)
