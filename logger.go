package hemesh

import (
	"log/slog"
	"sync/atomic"
)

// silent is the default logger: every level is disabled, so objfile pays no
// formatting cost while importing large files.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs the logger used by objfile and other hemesh packages.
// The mesh engine itself never logs. Pass nil to go back to silence.
//
// What is logged:
//   - [slog.LevelWarn]: OBJ lines that were skipped, with "line", "reason"
//     and "text" attributes.
//   - [slog.LevelDebug]: an import summary (lines, vertices, faces,
//     triangles, skipped, ignored).
//
// Example:
//
//	hemesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	d, err := objfile.Load("bunny.obj") // warnings for bad lines go to stderr
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the installed logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
