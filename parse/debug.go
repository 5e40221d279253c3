package parse

import (
	"log/slog"
	"os"
)

// Slot-by-slot tracing is enabled by setting ARGPARSE_DEBUG_PARSE. The
// handler drops timestamps and level markers so the trace reads as a
// plain transcript of the scan.
var debugLogger = newDebugLogger()

func newDebugLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("ARGPARSE_DEBUG_PARSE") != "" {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
