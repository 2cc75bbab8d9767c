// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "errors"

var (
	ErrDuplicate        = errors.New("entry is already in the registry")
	ErrCapacityExceeded = errors.New("registry is full")
	ErrEmptyAdmin       = errors.New("registry admin cannot be empty")
	ErrMalformedRecord  = errors.New("malformed registry record")
)
