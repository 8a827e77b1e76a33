// Package instrument configures process-wide structured logging.
package instrument

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config drives logging initialization.
type Config struct {
	// ServiceName is added to every record as "service".
	ServiceName string
	// Level is one of debug, info, warn or error. Unknown values fall back to info.
	Level string
	// Format is "json" or "text". Unknown values fall back to json.
	Format string
	// MaskFields lists log field names to mask in output.
	MaskFields []string
	// Output receives log records. Defaults to os.Stderr.
	Output io.Writer
}

type ctxKeyCorrelationID struct{}

// SetCorrelationID returns a copy of ctx carrying the correlation id.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID{}, cID)
}

// GetCorrelationID returns the correlation id stored in ctx, if any.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	cID, _ := ctx.Value(ctxKeyCorrelationID{}).(string)
	return cID
}

// New builds a logger from cfg and installs it as the slog default.
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger := newLogger(out, cfg.ServiceName, cfg.Format, ParseLevel(cfg.Level), cfg.MaskFields)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
