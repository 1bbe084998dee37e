package rgui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// guiLogger is the default logger; Engine replaces it per instance with
// WithLogger.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
