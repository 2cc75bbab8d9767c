// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"errors"
	"fmt"
)

var errDifferentMajor = errors.New("different major version")

type Application struct {
	Name  string `json:"name"  yaml:"name"`
	Major int    `json:"major" yaml:"major"`
	Minor int    `json:"minor" yaml:"minor"`
	Patch int    `json:"patch" yaml:"patch"`
}

// The only difference here between Application and Semantic is that
// Application prepends the client name rather than "v".
func (a *Application) String() string {
	return fmt.Sprintf(
		"%s/%d.%d.%d",
		a.Name,
		a.Major,
		a.Minor,
		a.Patch,
	)
}

// Compatible returns an error if a node running [o] cannot serve this
// application.
func (a *Application) Compatible(o *Application) error {
	if a.Major != o.Major {
		return fmt.Errorf("%w: %s and %s", errDifferentMajor, a, o)
	}
	return nil
}

// Compare returns a positive number if a > o, 0 if a == o, or a negative
// number if a < o.
func (a *Application) Compare(o *Application) int {
	if a.Major != o.Major {
		return a.Major - o.Major
	}
	if a.Minor != o.Minor {
		return a.Minor - o.Minor
	}
	return a.Patch - o.Patch
}
