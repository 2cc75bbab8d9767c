// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

const (
	// ReadWriteExecute is used for directories the node creates.
	ReadWriteExecute = 0o750
	// Secret is used for key files only the owner may read.
	Secret = 0o600
)
