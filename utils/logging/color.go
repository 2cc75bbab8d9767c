// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "github.com/fatih/color"

var (
	levelColors = map[Level]*color.Color{
		Fatal: color.New(color.FgRed, color.Bold),
		Error: color.New(color.FgRed),
		Warn:  color.New(color.FgYellow),
		// Info keeps the terminal's default so white backgrounds stay readable.
		Info:  color.New(color.Reset),
		Trace: color.New(color.FgMagenta),
		Debug: color.New(color.FgBlue),
		Verbo: color.New(color.FgGreen),
	}
	unknownLevelColor = color.New(color.FgRed)
)

func init() {
	// The colors format is chosen explicitly, so escapes are written even when
	// the output is not a terminal.
	for _, c := range levelColors {
		c.EnableColor()
	}
	unknownLevelColor.EnableColor()
}

func colorize(l Level) string {
	c, ok := levelColors[l]
	if !ok {
		return unknownLevelColor.Sprint(unknownStr)
	}
	return c.Sprint(l.String())
}
