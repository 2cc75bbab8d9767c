// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/keychain"
	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
)

// Tx is an operation together with the identity that authorized it.
type Tx struct {
	Unsigned  Unsigned                   `json:"unsignedTx"`
	Signer    ids.ID                     `json:"signer"`
	Signature [ed25519.SignatureLen]byte `json:"signature"`
}

// Sign authorizes [utx] with [signer].
func Sign(utx Unsigned, signer keychain.Signer) (*Tx, error) {
	msg, err := MarshalUnsigned(utx)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, err
	}

	tx := &Tx{
		Unsigned: utx,
		Signer:   signer.Address(),
	}
	if len(sig) != len(tx.Signature) {
		return nil, fmt.Errorf("%w: signature has %d bytes", ed25519.ErrInvalidSignature, len(sig))
	}
	copy(tx.Signature[:], sig)
	return tx, nil
}

func (tx *Tx) Bytes() ([]byte, error) {
	utxBytes, err := MarshalUnsigned(tx.Unsigned)
	if err != nil {
		return nil, err
	}
	p := wrappers.Packer{
		Bytes:   utxBytes,
		Offset:  len(utxBytes),
		MaxSize: MaxSize,
	}
	p.PackFixedBytes(tx.Signer[:])
	p.PackFixedBytes(tx.Signature[:])
	return p.Bytes, p.Err
}

// ID is the hash of the signed transaction.
func (tx *Tx) ID() (ids.ID, error) {
	b, err := tx.Bytes()
	if err != nil {
		return ids.Empty, err
	}
	return ids.ID(hashing.ComputeHash256Array(b)), nil
}

// Verify checks that the signer signed the unsigned transaction.
func (tx *Tx) Verify() error {
	msg, err := MarshalUnsigned(tx.Unsigned)
	if err != nil {
		return err
	}
	if !ed25519.PublicKeyFromID(tx.Signer).Verify(msg, tx.Signature[:]) {
		return fmt.Errorf("%w: from %s", ed25519.ErrInvalidSignature, tx.Signer)
	}
	return nil
}
