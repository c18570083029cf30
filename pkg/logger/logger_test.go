package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleHandler_Enabled(t *testing.T) {
	h := &SimpleHandler{Level: slog.LevelWarn}
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestSimpleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := &SimpleHandler{Output: &buf, Level: slog.LevelInfo, Prefix: "set-slice"}
	ctx := context.Background()

	// Use a fixed time for reproducible output
	fixedTime := time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC)

	r := slog.NewRecord(fixedTime, slog.LevelInfo, "Applied slice", 0)
	r.AddAttrs(slog.Int("pid", 1234), slog.Uint64("runtime_ns", 20000000))

	err := h.Handle(ctx, r)
	assert.NoError(t, err)

	expected := "2023-10-27 10:00:00 [INFO] set-slice: Applied slice pid=1234 runtime_ns=20000000\n"
	assert.Equal(t, expected, buf.String())
}

func TestSimpleHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &SimpleHandler{Output: &buf, Level: slog.LevelInfo}

	newH := h.WithAttrs([]slog.Attr{slog.Int("pid", 7)})
	assert.NotEqual(t, h, newH)
	assert.Equal(t, h, h.WithAttrs(nil))

	r := slog.NewRecord(time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC), slog.LevelWarn, "msg", 0)
	r.AddAttrs(slog.String("k", "v"))
	assert.NoError(t, newH.Handle(context.Background(), r))
	assert.Equal(t, "2023-10-27 10:00:00 [WARN] msg pid=7 k=v\n", buf.String())
}

func TestSimpleHandler_WithGroup(t *testing.T) {
	h := &SimpleHandler{Level: slog.LevelInfo}
	newH := h.WithGroup("group")
	assert.Equal(t, h, newH, "WithGroup should currently be a no-op returning the same handler")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelWarn, true},
		{"", slog.LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelError, "")
	l.Warn("dropped")
	assert.Empty(t, buf.String())
	l.Error("kept", "pid", 1)
	assert.Contains(t, buf.String(), "[ERROR] kept pid=1")
}
