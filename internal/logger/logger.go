// Package logger holds the logger shared by all glyphicon packages.
// By default nothing is logged; commands install a real handler through
// [SetLogger].
package logger

import "context"
import "log/slog"
import "sync/atomic"

// Discards all records. Enabled returns false so callers skip message
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by glyphicon and all its subpackages. Passing
// nil restores the default silent behavior. Safe for concurrent use.
//
// Levels in use:
//  - [slog.LevelDebug]: render sizes, cache hits, per-asset timings.
//  - [slog.LevelInfo]: written files.
//  - [slog.LevelWarn]: skipped fonts, iconutil failures and fallbacks.
func SetLogger(l *slog.Logger) {
	if l == nil { l = slog.New(nopHandler{}) }
	loggerPtr.Store(l)
}

// Returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
