// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is a zap level with a few extra verbosity steps. Lower values are
// more verbose.
type Level zapcore.Level

const (
	Verbo Level = iota - 3
	Debug
	Trace
	Info
	Warn
	Error
	Fatal = Level(zapcore.FatalLevel)
	Off   = Fatal + 1

	unknownStr       = "UNKNO"
	alignedStringLen = 5
)

var (
	ErrUnknownLevel = errors.New("unknown log level")

	levelNames = map[Level]string{
		Off:   "OFF",
		Fatal: "FATAL",
		Error: "ERROR",
		Warn:  "WARN",
		Info:  "INFO",
		Trace: "TRACE",
		Debug: "DEBUG",
		Verbo: "VERBO",
	}
	namedLevels = make(map[string]Level, len(levelNames))
)

func init() {
	for level, name := range levelNames {
		namedLevels[name] = level
	}
}

// ToLevel parses a level name case-insensitively.
func ToLevel(l string) (Level, error) {
	if level, ok := namedLevels[strings.ToUpper(l)]; ok {
		return level, nil
	}
	return Info, fmt.Errorf("%w: %q", ErrUnknownLevel, l)
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return unknownStr
}

func (l Level) LowerString() string {
	return strings.ToLower(l.String())
}

// AlignedString is the name padded or cut to a fixed width so log columns
// line up.
func (l Level) AlignedString() string {
	return fmt.Sprintf("%-*.*s", alignedStringLen, alignedStringLen, l.String())
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*l, err = ToLevel(str)
	return err
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func lowercaseLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).LowerString())
}

func consoleColorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(colorize(Level(l)))
}
