// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/database/versiondb"
	"github.com/LAVASoftWorks/vkct-core/ids"
)

// Tx is the view of the ledger given to one Update call. Every write lands in
// an overlay that is committed or discarded as a whole.
type Tx struct {
	ledger *Ledger
	db     *versiondb.Database
	locked map[ids.ID]struct{}
}

func (tx *Tx) checkLocked(addrs ...ids.ID) error {
	for _, addr := range addrs {
		if _, ok := tx.locked[addr]; !ok {
			return fmt.Errorf("%w: %s", ErrUnlockedAddress, addr)
		}
	}
	return nil
}

// GetAccount loads the account at [addr].
func (tx *Tx) GetAccount(addr ids.ID) (*Account, error) {
	if err := tx.checkLocked(addr); err != nil {
		return nil, err
	}
	return GetAccount(tx.db, addr)
}

// CreateAccount allocates an account of len([data]) bytes at [addr], owned by
// [owner]. The storage deposit is taken from [payer].
func (tx *Tx) CreateAccount(payer, addr, owner ids.ID, data []byte) (uint64, error) {
	if err := tx.checkLocked(payer, addr); err != nil {
		return 0, err
	}
	if len(data) > MaxDataLen {
		return 0, fmt.Errorf("%w: %d bytes exceeds %d", ErrDataSizeMismatch, len(data), MaxDataLen)
	}

	exists, err := HasAccount(tx.db, addr)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: %s", ErrAccountExists, addr)
	}

	deposit, err := tx.ledger.DepositFor(len(data))
	if err != nil {
		return 0, err
	}
	if err := DecreaseBalance(tx.db, payer, deposit); err != nil {
		return 0, err
	}
	return deposit, PutAccount(tx.db, addr, &Account{
		Owner:   owner,
		Deposit: deposit,
		Data:    data,
	})
}

// WriteData replaces the data of the account at [addr]. Accounts are never
// resized, so [data] must have the length the account was created with.
func (tx *Tx) WriteData(addr, owner ids.ID, data []byte) error {
	acct, err := tx.GetAccount(addr)
	if err != nil {
		return err
	}
	if acct.Owner != owner {
		return fmt.Errorf("%w: %s is owned by %s", ErrWrongOwner, addr, acct.Owner)
	}
	if len(data) != len(acct.Data) {
		return fmt.Errorf("%w: account holds %d bytes, got %d", ErrDataSizeMismatch, len(acct.Data), len(data))
	}
	acct.Data = data
	return PutAccount(tx.db, addr, acct)
}

// CloseAccount deletes the account at [addr] and credits its deposit to
// [recipient].
func (tx *Tx) CloseAccount(addr, owner, recipient ids.ID) (uint64, error) {
	if err := tx.checkLocked(recipient); err != nil {
		return 0, err
	}
	acct, err := tx.GetAccount(addr)
	if err != nil {
		return 0, err
	}
	if acct.Owner != owner {
		return 0, fmt.Errorf("%w: %s is owned by %s", ErrWrongOwner, addr, acct.Owner)
	}
	if err := DeleteAccount(tx.db, addr); err != nil {
		return 0, err
	}
	return acct.Deposit, IncreaseBalance(tx.db, recipient, acct.Deposit)
}

func (tx *Tx) Balance(addr ids.ID) (uint64, error) {
	if err := tx.checkLocked(addr); err != nil {
		return 0, err
	}
	return GetBalance(tx.db, addr)
}

func (tx *Tx) Credit(addr ids.ID, amount uint64) error {
	if err := tx.checkLocked(addr); err != nil {
		return err
	}
	return IncreaseBalance(tx.db, addr, amount)
}

func (tx *Tx) Debit(addr ids.ID, amount uint64) error {
	if err := tx.checkLocked(addr); err != nil {
		return err
	}
	return DecreaseBalance(tx.db, addr, amount)
}

func (tx *Tx) Nonce(addr ids.ID) (uint64, error) {
	if err := tx.checkLocked(addr); err != nil {
		return 0, err
	}
	return GetNonce(tx.db, addr)
}

// IncrementNonce consumes [nonce] for [addr]. It fails unless [nonce] is the
// next unused nonce.
func (tx *Tx) IncrementNonce(addr ids.ID, nonce uint64) error {
	if err := tx.checkLocked(addr); err != nil {
		return err
	}
	return IncrementNonce(tx.db, addr, nonce)
}

// IsNotFound reports whether [err] means the account does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}
