// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
)

// MaxSize is the largest encoded transaction.
const MaxSize = 1024

const (
	initializeID byte = iota
	addEntryID
	setPauseID
	closeID
)

var (
	_ Visitor = (*packer)(nil)

	ErrUnknownTxType = errors.New("unknown transaction type")
	errTrailingBytes = errors.New("trailing bytes after transaction")
)

type packer struct {
	p *wrappers.Packer
}

func (p *packer) base(typeID byte, b *BaseTx) {
	p.p.PackByte(typeID)
	p.p.PackLong(b.Nonce)
	p.p.PackFixedBytes(b.Registry[:])
}

func (p *packer) Initialize(tx *Initialize) error {
	p.base(initializeID, &tx.BaseTx)
	p.p.PackByte(byte(tx.Kind))
	return p.p.Err
}

func (p *packer) AddEntry(tx *AddEntry) error {
	p.base(addEntryID, &tx.BaseTx)
	p.p.PackByte(byte(tx.Kind))
	p.p.PackFixedBytes(tx.Entry[:])
	return p.p.Err
}

func (p *packer) SetPause(tx *SetPause) error {
	p.base(setPauseID, &tx.BaseTx)
	p.p.PackBool(tx.Paused)
	return p.p.Err
}

func (p *packer) Close(tx *Close) error {
	p.base(closeID, &tx.BaseTx)
	p.p.PackByte(byte(tx.Kind))
	return p.p.Err
}

// MarshalUnsigned returns the bytes a signer signs for [utx].
func MarshalUnsigned(utx Unsigned) ([]byte, error) {
	p := &wrappers.Packer{MaxSize: MaxSize}
	if err := utx.Visit(&packer{p: p}); err != nil {
		return nil, err
	}
	return p.Bytes, nil
}

func unpackUnsigned(p *wrappers.Packer) (Unsigned, error) {
	typeID := p.UnpackByte()
	base := BaseTx{
		Nonce: p.UnpackLong(),
	}
	copy(base.Registry[:], p.UnpackFixedBytes(ids.IDLen))
	if p.Errored() {
		return nil, p.Err
	}

	var utx Unsigned
	switch typeID {
	case initializeID:
		utx = &Initialize{
			BaseTx: base,
			Kind:   state.Kind(p.UnpackByte()),
		}
	case addEntryID:
		tx := &AddEntry{
			BaseTx: base,
			Kind:   state.Kind(p.UnpackByte()),
		}
		copy(tx.Entry[:], p.UnpackFixedBytes(ids.IDLen))
		utx = tx
	case setPauseID:
		utx = &SetPause{
			BaseTx: base,
			Paused: p.UnpackBool(),
		}
	case closeID:
		utx = &Close{
			BaseTx: base,
			Kind:   state.Kind(p.UnpackByte()),
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTxType, typeID)
	}
	return utx, p.Err
}

// Parse decodes a signed transaction.
func Parse(b []byte) (*Tx, error) {
	if len(b) > MaxSize {
		return nil, fmt.Errorf("transaction of %d bytes exceeds %d", len(b), MaxSize)
	}

	p := &wrappers.Packer{Bytes: b}
	utx, err := unpackUnsigned(p)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse unsigned transaction: %w", err)
	}

	tx := &Tx{Unsigned: utx}
	copy(tx.Signer[:], p.UnpackFixedBytes(ids.IDLen))
	copy(tx.Signature[:], p.UnpackFixedBytes(ed25519.SignatureLen))
	if p.Errored() {
		return nil, fmt.Errorf("couldn't parse signature: %w", p.Err)
	}
	if p.Offset != len(b) {
		return nil, fmt.Errorf("%w: %d", errTrailingBytes, len(b)-p.Offset)
	}
	return tx, nil
}
