// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"go.uber.org/zap"
)

// Func is the shape of every leveled logging method.
type Func func(msg string, fields ...zap.Field)

// Logger writes leveled, structured records. Writes through io.Writer are
// passed to every enabled output unformatted.
type Logger interface {
	io.Writer

	// Fatal records an error the process cannot continue past.
	Fatal(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	// Info records state changes an operator should see, such as a registry
	// being initialized or closed.
	Info(msg string, fields ...zap.Field)
	Trace(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	// Verbo records per-transaction detail.
	Verbo(msg string, fields ...zap.Field)

	With(fields ...zap.Field) Logger

	SetLevel(level Level)
	Enabled(lvl Level) bool

	// RecoverAndExit runs [f]. If it panics, the panic is logged and [exit]
	// is called instead of unwinding further.
	RecoverAndExit(f, exit func())

	// Stop closes every output.
	Stop()
}
