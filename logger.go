package pixelhouse

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixelhouse and its sub-packages.
// By default, pixelhouse produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by pixelhouse:
//   - [slog.LevelDebug]: compositing diagnostics (layer and operation counts)
//   - [slog.LevelInfo]: files written, displays opened
//
// SetLogger is safe for concurrent use; the canvas itself is not.
//
// Example:
//
//	pixelhouse.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixelhouse.
// Sub-packages (imageio, artist) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
