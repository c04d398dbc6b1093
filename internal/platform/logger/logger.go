// Package logger configures the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

// New returns a slog logger writing to stdout. NOTARY_LOG_FORMAT=json
// switches to JSON output for log shippers.
func New() *slog.Logger {
	var handler slog.Handler
	if os.Getenv("NOTARY_LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(handler)
}
