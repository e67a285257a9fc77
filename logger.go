// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false so callers never
// build the attributes of a discarded record.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silentLogger = slog.New(silentHandler{})

// current is the logger used for bootstrap and discovery messages.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger)
}

// SetLogger routes dxrt output to l. A nil l silences dxrt again, which is
// also the initial state. It may be called while a runtime is being created
// on another goroutine.
//
// Records emitted by dxrt, all prefixed "dxrt:":
//   - Debug: physical device counts, adapters not matching the name filter
//   - Info: engine and application identity, enabled instance extensions,
//     the default adapter override, the ranked adapters
//   - Warn: CPU adapters and adapters with an outdated API version being
//     skipped, an empty adapter list
//
// To see why an adapter is missing, install a debug-level handler before
// calling New:
//
//	var level slog.LevelVar
//	level.Set(slog.LevelDebug)
//	dxrt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level})))
//	rt, err := dxrt.New()
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return current.Load()
}
