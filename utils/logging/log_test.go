// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

const exitCodeEnv = "VKCT_LOGGING_EXIT_CODE"

// TestRecoverAndExitInProcess checks that logging a panic at the Fatal level
// hands control to the exit callback instead of terminating the process.
func TestRecoverAndExitInProcess(t *testing.T) {
	if os.Getenv(exitCodeEnv) != "" {
		log := NewLogger("", NewWrappedCore(Info, Discard, JSON.ConsoleEncoder()))
		log.RecoverAndExit(
			func() { panic("boom") },
			func() { os.Exit(42) },
		)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestRecoverAndExitInProcess$")
	cmd.Env = append(os.Environ(), exitCodeEnv+"=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected the exit callback to end the process: %v", err)
	require.Equal(t, 42, exitErr.ExitCode())
}

func TestFatalDoesNotExit(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	log.Fatal("unrecoverable")
	require.Contains(buf.String(), `"msg":"unrecoverable"`)
	require.Contains(buf.String(), `"level":"fatal"`)
}

func TestLogLevelFiltering(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("registry", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))

	log.Debug("hidden")
	require.Zero(buf.Len())

	log.Info("initialized registry", zap.String("kind", "token"))
	require.Contains(buf.String(), `"msg":"initialized registry"`)
	require.Contains(buf.String(), `"kind":"token"`)
	require.Contains(buf.String(), `"logger":"registry"`)

	buf.Reset()
	log.SetLevel(Debug)
	require.True(log.Enabled(Debug))
	log.Debug("shown")
	require.Contains(buf.String(), "shown")
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	child := log.With(zap.String("address", "abc"))

	child.Info("child")
	require.Contains(buf.String(), `"address":"abc"`)

	buf.Reset()
	log.Info("parent")
	require.NotContains(buf.String(), "address")
}

func TestFactoryWritesFiles(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	factory := NewFactory(Config{
		RotatingWriterConfig: RotatingWriterConfig{
			Directory: dir,
			MaxSize:   1,
		},
		DisableWriterDisplaying: true,
		LogLevel:                Info,
		DisplayLevel:            Info,
	})

	logger, err := factory.Make("vm")
	require.NoError(err)

	_, err = factory.Make("vm")
	require.Error(err)

	logger.Info("hello")
	require.ElementsMatch([]string{"vm"}, factory.GetLoggerNames())

	require.NoError(factory.SetLogLevel("vm", Error))
	logger.Info("dropped")
	require.Error(factory.SetDisplayLevel("unknown", Info))

	factory.Close()

	contents, err := os.ReadFile(filepath.Join(dir, "vm.log"))
	require.NoError(err)
	require.Contains(string(contents), "hello")
	require.NotContains(string(contents), "dropped")
}

func TestFactoryHooks(t *testing.T) {
	require := require.New(t)

	factory := NewFactory(Config{
		DisableWriterDisplaying: true,
		DisplayLevel:            Info,
		LogLevel:                Info,
	})
	defer factory.Close()

	logger, err := factory.Make("hooks")
	require.NoError(err)

	var messages bytes.Buffer
	internalLogger := logger.(*log).internalLogger
	logger.(*log).internalLogger = internalLogger.WithOptions(zap.Hooks(func(entry zapcore.Entry) error {
		messages.WriteString(entry.Message)
		return nil
	}))

	logger.Debug("debug")
	require.Zero(messages.Len())

	require.NoError(factory.SetDisplayLevel("hooks", Debug))
	logger.Debug("debug")
	require.Equal("debug", messages.String())
}

func TestUserString(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	log.Info("input", UserString("arg", "a\nb"), UserStrings("args", []string{"c\nd", "e"}))
	require.Contains(buf.String(), `"arg":"a\\nb"`)
	require.Contains(buf.String(), `"args":"c\\nd, e"`)
}
