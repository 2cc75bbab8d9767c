// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrAccountExists       = errors.New("account already in use")
	ErrAccountNotFound     = errors.New("account not found")
	ErrWrongOwner          = errors.New("account is not owned by the program")
	ErrDataSizeMismatch    = errors.New("account data cannot be resized")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrWrongNonce          = errors.New("wrong nonce")
	ErrUnlockedAddress     = errors.New("address was not locked by the transaction")
	ErrAlreadyBootstrapped = errors.New("ledger already bootstrapped")
)
