// Package cli implements the orbital command-line interface.
//
// The CLI renders and inspects a collection described by a TOML
// configuration file (--config or $ORBITAL_CONFIG; built-in defaults
// otherwise). Every command builds the same generator the HTTP server and
// the publisher use, so output is identical across surfaces.
//
// # Commands
//
//   - attributes, render: query one index
//   - export: render a range into a gallery directory
//   - validate, info: check and describe the configured collection
//   - decode, pack, schema: inspect packed-trait tables
//   - serve, publish: HTTP query server and MongoDB metadata publisher
//   - browse: step through indices in a terminal UI
//   - cache: clear or locate the document cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports render, cache and request events through the observability hooks.
// Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of one operation. It is not safe for
// concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Exported 100 tokens (1.234s)".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", p.elapsed())...)
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
