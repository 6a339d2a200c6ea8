// Package logger configures the process-wide structured logger and
// exposes per-component child loggers.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initOnce sync.Once

	// L is the base logger. It defaults to slog.Default until Init runs.
	L = slog.Default()
)

// Init configures the global structured logger. It may be called only once.
func Init(level, format string) error {
	var initErr error
	initOnce.Do(func() {
		lvl, err := parseLevel(level)
		if err != nil {
			initErr = err
			return
		}

		opts := &slog.HandlerOptions{Level: lvl}
		var handler slog.Handler
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "", "text", "kv":
			handler = slog.NewTextHandler(os.Stdout, opts)
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			initErr = fmt.Errorf("invalid log format %q; allowed: text, json", format)
			return
		}

		L = slog.New(handler)
		slog.SetDefault(L)
	})
	return initErr
}

// Component returns a child logger tagged with the component name.
func Component(name string) *slog.Logger {
	return L.With("component", name)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", level)
}
