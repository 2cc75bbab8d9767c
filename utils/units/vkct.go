// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

// Denominations of value
const (
	NanoVkct  uint64 = 1
	MicroVkct uint64 = 1000 * NanoVkct
	MilliVkct uint64 = 1000 * MicroVkct
	Vkct      uint64 = 1000 * MilliVkct
	KiloVkct  uint64 = 1000 * Vkct
)
