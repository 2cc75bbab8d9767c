// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
)

// Record is the decoded data of a registry account. Paused is only meaningful
// for the token registry.
type Record struct {
	Kind     Kind     `json:"kind"`
	Admin    ids.ID   `json:"admin"`
	Capacity uint32   `json:"capacity"`
	Entries  []ids.ID `json:"entries"`
	Paused   bool     `json:"paused"`
}

// New returns an empty record administered by [admin].
func New(kind Kind, admin ids.ID, capacity uint32) (*Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownKind, kind)
	}
	if admin == ids.Empty {
		return nil, ErrEmptyAdmin
	}
	return &Record{
		Kind:     kind,
		Admin:    admin,
		Capacity: capacity,
		Entries:  []ids.ID{},
	}, nil
}

func (r *Record) Contains(entry ids.ID) bool {
	return slices.Contains(r.Entries, entry)
}

// CanAppend reports whether another entry fits.
func (r *Record) CanAppend() bool {
	return uint32(len(r.Entries)) < r.Capacity
}

// Append adds [entry] to the end of the allowlist. The record is left
// unchanged on error.
func (r *Record) Append(entry ids.ID) error {
	if r.Contains(entry) {
		return fmt.Errorf("%w: %s", ErrDuplicate, entry)
	}
	if !r.CanAppend() {
		return fmt.Errorf("%w: capacity is %d", ErrCapacityExceeded, r.Capacity)
	}
	r.Entries = append(r.Entries, entry)
	return nil
}

// Size is the encoded length of the record. It does not depend on the number
// of entries.
func (r *Record) Size() int {
	return Size(r.Kind, r.Capacity)
}

// Size returns the account data length of a [kind] registry holding up to
// [capacity] entries.
func Size(kind Kind, capacity uint32) int {
	size := discriminatorLen + ids.IDLen + 2*wrappers.IntLen + int(capacity)*ids.IDLen
	if kind == TokenKind {
		size += wrappers.BoolLen
	}
	return size
}

// Bytes encodes the record in its fixed size account layout.
func (r *Record) Bytes() []byte {
	size := r.Size()
	p := wrappers.Packer{
		Bytes:   make([]byte, 0, size),
		MaxSize: size,
	}
	disc := r.Kind.Discriminator()
	p.PackFixedBytes(disc[:])
	p.PackFixedBytes(r.Admin[:])
	p.PackInt(r.Capacity)
	p.PackInt(uint32(len(r.Entries)))
	for _, entry := range r.Entries {
		p.PackFixedBytes(entry[:])
	}
	p.PackFixedBytes(make([]byte, (int(r.Capacity)-len(r.Entries))*ids.IDLen))
	if r.Kind == TokenKind {
		p.PackBool(r.Paused)
	}
	return p.Bytes
}

// Parse decodes a [kind] record from account data.
func Parse(kind Kind, b []byte) (*Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownKind, kind)
	}

	p := wrappers.Packer{Bytes: b}
	disc := kind.Discriminator()
	if got := p.UnpackFixedBytes(discriminatorLen); !p.Errored() && !bytes.Equal(got, disc[:]) {
		return nil, fmt.Errorf("%w: not a %s account", ErrMalformedRecord, kind.TypeName())
	}

	r := &Record{Kind: kind}
	copy(r.Admin[:], p.UnpackFixedBytes(ids.IDLen))
	r.Capacity = p.UnpackInt()
	count := p.UnpackInt()
	if p.Errored() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, p.Err)
	}
	if expected := Size(kind, r.Capacity); len(b) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes for capacity %d but got %d",
			ErrMalformedRecord, expected, r.Capacity, len(b))
	}
	if count > r.Capacity {
		return nil, fmt.Errorf("%w: %d entries exceed capacity %d", ErrMalformedRecord, count, r.Capacity)
	}
	if r.Admin == ids.Empty {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, ErrEmptyAdmin)
	}

	r.Entries = make([]ids.ID, 0, count)
	for i := uint32(0); i < r.Capacity; i++ {
		var entry ids.ID
		copy(entry[:], p.UnpackFixedBytes(ids.IDLen))
		if i >= count {
			if entry != ids.Empty {
				return nil, fmt.Errorf("%w: unused slot %d is not zeroed", ErrMalformedRecord, i)
			}
			continue
		}
		if r.Contains(entry) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, ErrDuplicate)
		}
		r.Entries = append(r.Entries, entry)
	}
	if kind == TokenKind {
		r.Paused = p.UnpackBool()
	}
	if p.Errored() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, p.Err)
	}
	return r, nil
}
