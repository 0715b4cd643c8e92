// Package logging provides the package-level diagnostic logger for rex.
//
// The matching hot path never logs: matching is synchronous and
// side-effect free (see the concurrency and resource model). This logger
// exists for compiler-side diagnostics — failed compilations, NFA
// construction decisions such as prefilter selection — and defaults to
// discarding everything. Being internal, it can only be replaced by code
// inside this module (the rex command does so with SetLogger).
package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger installs l as rex's package-level diagnostic logger.
// Passing nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Store(l)
}

// Logger returns the current diagnostic logger.
func Logger() *slog.Logger {
	return logger.Load()
}
