// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package projection renders registry snapshots for people.
package projection

import (
	"fmt"
	"strings"

	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
)

const (
	Paused = "PAUSED"
	Active = "ACTIVE"
)

func TokenRegistry(r *state.Record) string {
	return render("Token Registry", "Allowed Tokens:", r)
}

func CollectionRegistry(r *state.Record) string {
	return render("Collection Registry", "Allowed Collections:", r)
}

// WithdrawalStatus is PAUSED or ACTIVE.
func WithdrawalStatus(paused bool) string {
	if paused {
		return Paused
	}
	return Active
}

func render(title, listHeader string, r *state.Record) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, title)
	fmt.Fprintf(&sb, "Admin: %s\n", r.Admin)
	fmt.Fprintln(&sb, listHeader)
	for i, entry := range r.Entries {
		fmt.Fprintf(&sb, " %d. %s\n", i+1, entry)
	}
	return sb.String()
}
