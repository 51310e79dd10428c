// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// ErrCrashHookInstalled is returned when InstallCrashHook is called more than once.
var ErrCrashHookInstalled = errors.New("crash hook already installed")

var crashOnce sync.Once

// InstallCrashHook is the process-wide crash reporting setup. It must run once
// at startup, before any request is served. When path is non-empty, fatal runtime
// crash output is additionally written to that file.
func InstallCrashHook(path string) error {
	err := ErrCrashHookInstalled
	crashOnce.Do(func() {
		err = nil
		if path != "" {
			f, openErr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
			if openErr != nil {
				err = fmt.Errorf("open crash output: %w", openErr)
				return
			}
			if setErr := debug.SetCrashOutput(f, debug.CrashOptions{}); setErr != nil {
				_ = f.Close()
				err = fmt.Errorf("set crash output: %w", setErr)
				return
			}
			// The runtime keeps its own duplicate of the descriptor.
			_ = f.Close()
		}
		logger := WithComponent("crash")
		logger.Info().
			Str(FieldEvent, "crash_hook.installed").
			Str("crash_output", path).
			Msg("crash hook installed")
	})
	return err
}

// Recover logs a panic raised in the calling goroutine instead of letting it
// take down the process. Use it as `defer log.Recover("component")`.
func Recover(component string) {
	rec := recover()
	if rec == nil {
		return
	}
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)

	logger := WithComponent(component)
	logger.Error().
		Str(FieldEvent, "panic.recovered").
		Interface("panic_value", rec).
		Str("stack_trace", string(buf[:n])).
		Msg("panic recovered in background goroutine")
}
