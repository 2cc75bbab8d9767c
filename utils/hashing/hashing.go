// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing holds the sha256 helpers used for addresses, transaction
// IDs, account discriminators and checksums.
package hashing

import "crypto/sha256"

const HashLen = sha256.Size

type Hash256 = [HashLen]byte

func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

func ComputeHash256(buf []byte) []byte {
	arr := sha256.Sum256(buf)
	return arr[:]
}

// ComputeHash256Concat hashes the concatenation of [bufs] without building
// the concatenated slice.
func ComputeHash256Concat(bufs ...[]byte) Hash256 {
	h := sha256.New()
	for _, buf := range bufs {
		h.Write(buf)
	}
	var out Hash256
	h.Sum(out[:0])
	return out
}

// Checksum returns the last [length] bytes of the hash of [bytes]. [length]
// must not exceed HashLen.
func Checksum(bytes []byte, length int) []byte {
	hash := sha256.Sum256(bytes)
	return hash[HashLen-length:]
}
