// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Versions contains the versions relevant to a build of vkct.
type Versions struct {
	Application string `json:"application"`
	Database    string `json:"database"`
	Commit      string `json:"commit"`
	Go          string `json:"go"`
}

func GetVersions() *Versions {
	return &Versions{
		Application: Current.String(),
		Database:    CurrentDatabase.String(),
		Commit:      GitCommit,
		Go:          strings.TrimPrefix(runtime.Version(), "go"),
	}
}

// String returns the one-line summary printed by the version command.
func (v *Versions) String() string {
	format := "%s [database=%s"
	args := []interface{}{
		v.Application,
		v.Database,
	}
	if v.Commit != "" {
		format += ", commit=%s"
		args = append(args, v.Commit)
	}
	format += ", go=%s]"
	args = append(args, v.Go)
	return fmt.Sprintf(format, args...)
}
