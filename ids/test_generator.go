// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/binary"
	"sync/atomic"
)

var offset = uint64(0)

// GenerateTestID returns a new ID that should only be used for testing
func GenerateTestID() ID {
	id := ID{0xff}
	binary.BigEndian.PutUint64(id[len(id)-8:], atomic.AddUint64(&offset, 1))
	return id
}
