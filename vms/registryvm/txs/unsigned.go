// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
)

var (
	_ Unsigned = (*Initialize)(nil)
	_ Unsigned = (*AddEntry)(nil)
	_ Unsigned = (*SetPause)(nil)
	_ Unsigned = (*Close)(nil)
)

type Unsigned interface {
	Base() *BaseTx
	Visit(Visitor) error
}

type Visitor interface {
	Initialize(*Initialize) error
	AddEntry(*AddEntry) error
	SetPause(*SetPause) error
	Close(*Close) error
}

// BaseTx is shared by every registry operation.
type BaseTx struct {
	// Nonce provides replay protection for the signer
	Nonce uint64 `json:"nonce"`
	// Registry is the derived address the operation applies to
	Registry ids.ID `json:"registry"`
}

func (b *BaseTx) Base() *BaseTx {
	return b
}

// Initialize creates the registry of [Kind] with the signer as its admin.
type Initialize struct {
	BaseTx `json:"base"`
	Kind   state.Kind `json:"kind"`
}

func (i *Initialize) Visit(v Visitor) error {
	return v.Initialize(i)
}

// AddEntry appends [Entry] to the allowlist of the registry of [Kind].
type AddEntry struct {
	BaseTx `json:"base"`
	Kind   state.Kind `json:"kind"`
	Entry  ids.ID     `json:"entry"`
}

func (a *AddEntry) Visit(v Visitor) error {
	return v.AddEntry(a)
}

// SetPause sets the withdrawal pause flag of the token registry.
type SetPause struct {
	BaseTx `json:"base"`
	Paused bool `json:"paused"`
}

func (s *SetPause) Visit(v Visitor) error {
	return v.SetPause(s)
}

// Close deletes the registry of [Kind] and returns its deposit to the signer.
type Close struct {
	BaseTx `json:"base"`
	Kind   state.Kind `json:"kind"`
}

func (c *Close) Visit(v Visitor) error {
	return v.Close(c)
}
