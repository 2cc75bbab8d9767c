// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import "errors"

var (
	ErrAlreadyExists          = errors.New("registry is already initialized")
	ErrNotFound               = errors.New("registry not provisioned")
	ErrUnauthorized           = errors.New("signer is not the registry admin")
	ErrInvalidRegistryAddress = errors.New("registry address does not match the derived address")
	ErrWrongKind              = errors.New("operation does not apply to this registry")
)
