package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run.id"
	KeyStage      = "stage"
	KeyView       = "view"
	KeyCollection = "collection"
	KeyDest       = "dest"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyDuration   = "duration"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func View(path string) slog.Attr       { return slog.String(KeyView, path) }
func Collection(name string) slog.Attr { return slog.String(KeyCollection, name) }
func Dest(path string) slog.Attr       { return slog.String(KeyDest, path) }
func File(path string) slog.Attr       { return slog.String(KeyFile, path) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
