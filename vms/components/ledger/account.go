// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/math"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
)

const (
	// AccountStorageOverhead is charged on top of the data length of every
	// account.
	AccountStorageOverhead = 128

	// DefaultDepositPerByte is the deposit charged per stored byte.
	DefaultDepositPerByte = 6960

	// MaxDataLen bounds the data held by a single account.
	MaxDataLen = 10 * 1024 * 1024

	accountHeaderLen = ids.IDLen + wrappers.LongLen + wrappers.IntLen
)

var errTrailingBytes = errors.New("trailing bytes after account")

// Account is a fixed-size blob of data owned by a program. The deposit held
// against it is returned when the account is closed.
type Account struct {
	Owner   ids.ID
	Deposit uint64
	Data    []byte
}

// Bytes returns the account layout: owner | deposit | dataLen | data.
func (a *Account) Bytes() []byte {
	size := accountHeaderLen + len(a.Data)
	p := wrappers.Packer{
		MaxSize: size,
		Bytes:   make([]byte, 0, size),
	}
	p.PackFixedBytes(a.Owner[:])
	p.PackLong(a.Deposit)
	p.PackBytes(a.Data)
	return p.Bytes
}

// ParseAccount is the inverse of Account.Bytes.
func ParseAccount(b []byte) (*Account, error) {
	p := wrappers.Packer{
		Bytes:   b,
		MaxSize: accountHeaderLen + MaxDataLen,
	}
	owner := p.UnpackFixedBytes(ids.IDLen)
	deposit := p.UnpackLong()
	data := p.UnpackLimitedBytes(MaxDataLen)
	if p.Errored() {
		return nil, fmt.Errorf("couldn't parse account: %w", p.Err)
	}
	if p.Offset != len(b) {
		return nil, fmt.Errorf("%w: %d", errTrailingBytes, len(b)-p.Offset)
	}
	acct := &Account{
		Deposit: deposit,
		Data:    slices.Clone(data),
	}
	copy(acct.Owner[:], owner)
	return acct, nil
}

// Deposit returns the storage deposit for an account holding [dataLen] bytes.
func Deposit(dataLen int, depositPerByte uint64) (uint64, error) {
	return math.Mul(uint64(AccountStorageOverhead+dataLen), depositPerByte)
}
