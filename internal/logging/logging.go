// Package logging builds the slog loggers used by the command-line tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// Handler names accepted by New.
const (
	DevHandler  = "dev"
	TextHandler = "text"
	JSONHandler = "json"
)

// Options configures a logger.
type Options struct {
	Level   slog.Level
	Handler string // DevHandler when empty
	Color   bool   // only used by DevHandler
}

// New returns a logger writing to w.
func New(w io.Writer, o Options) (*slog.Logger, error) {
	switch strings.ToLower(o.Handler) {
	case "", DevHandler:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      o.Level,
			TimeFormat: "[15:04:05.000]",
			NoColor:    !o.Color,
		})), nil
	case TextHandler:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: o.Level})), nil
	case JSONHandler:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: o.Level})), nil
	default:
		return nil, fmt.Errorf("unknown log handler %q", o.Handler)
	}
}

// ParseLevel parses "debug", "info", "warn", or "error", optionally with an
// offset such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
