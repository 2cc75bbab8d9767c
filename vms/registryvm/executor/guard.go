// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/ids"
)

// Authorize allows [caller] to mutate a registry administered by [admin].
func Authorize(caller, admin ids.ID) error {
	if admin == ids.Empty || caller != admin {
		return fmt.Errorf("%w: %s", ErrUnauthorized, caller)
	}
	return nil
}
