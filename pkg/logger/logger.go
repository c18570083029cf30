package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SimpleHandler implements slog.Handler for common log format.
type SimpleHandler struct {
	Output io.Writer
	Level  slog.Level
	Prefix string

	attrs []slog.Attr
}

// New returns a logger that writes "time [LEVEL] prefix: msg k=v" lines to w.
func New(w io.Writer, level slog.Level, prefix string) *slog.Logger {
	return slog.New(&SimpleHandler{Output: w, Level: level, Prefix: prefix})
}

// ParseLevel maps a level name to a slog.Level. Unknown names return
// slog.LevelWarn together with an error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", name)
}

func (h *SimpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Level
}

func (h *SimpleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	sb.WriteString(" [")
	sb.WriteString(r.Level.String())
	sb.WriteString("] ")
	if h.Prefix != "" {
		sb.WriteString(h.Prefix)
		sb.WriteString(": ")
	}
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
		return true
	})
	sb.WriteByte('\n')

	_, err := io.WriteString(h.Output, sb.String())
	return err
}

func (h *SimpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup is a no-op; groups are not rendered.
func (h *SimpleHandler) WithGroup(name string) slog.Handler {
	return h
}
