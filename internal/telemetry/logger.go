// Package telemetry turns the simulation's event stream into structured
// log lines and per-run summaries.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the application logger writing to w at the named level
// (debug, info, warn, error).
func NewLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("telemetry: log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, nil
}

// OpenLogFile creates a logger appending to path. Terminal frontends use
// it because stderr belongs to the alternate screen. The returned closer
// must be called on exit.
func OpenLogFile(path, level, prefix string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("telemetry: open log file: %w", err)
	}
	logger, err := NewLogger(f, level, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
