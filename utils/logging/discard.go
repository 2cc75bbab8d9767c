// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
)

var (
	// Discard is a writer that drops everything written to it
	Discard io.WriteCloser = nopCloser{Writer: io.Discard}
	// Stdout writes to the process's standard output. Stopping a logger never
	// closes the process's standard output.
	Stdout io.WriteCloser = nopCloser{Writer: os.Stdout}
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
