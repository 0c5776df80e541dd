package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestFromContext_Fallbacks(t *testing.T) {
	assert.Equal(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContext(context.Background()))

	_, ok := LoggerFromContext(context.Background())
	assert.False(t, ok)
}

func TestWithContext_RoundTrip(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), custom)

	assert.Equal(t, custom, FromContext(ctx))

	got, ok := LoggerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, custom, got)
}

func TestContextIDs(t *testing.T) {
	tests := []struct {
		name   string
		enrich func(context.Context, string) context.Context
		key    string
	}{
		{"request id", WithRequestID, "request_id"},
		{"trace id", WithTraceID, "trace_id"},
		{"correlation id", WithCorrelationID, "correlation_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := WithContext(context.Background(), jsonLogger(&buf))
			ctx = tt.enrich(ctx, "id-123")

			FromContext(ctx).InfoContext(ctx, "hello")

			assert.Equal(t, "id-123", decodeLine(t, &buf)[tt.key])
		})
	}
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "info", Format: "json", Service: "project-blog", Version: "1.0.0"}, &buf)

	logger.Info("page rendered", slog.String("view", "list"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "page rendered", entry["msg"])
	assert.Equal(t, "project-blog", entry["service_name"])
	assert.Equal(t, "1.0.0", entry["service_version"])
	assert.Equal(t, "list", entry["view"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "warn", Format: "text"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "info", Format: "pretty", Service: "project-blog"}, &buf)

	logger.Info("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
}

func TestNewWithWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.log")

	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "text",
		File: FileConfig{
			Enabled:    true,
			Path:       path,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &buf)

	logger.Info("written twice")

	assert.Contains(t, buf.String(), "written twice")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"written twice"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, parseLevel(input), input)
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		input    slog.Level
		expected log.Level
	}{
		{LevelTrace, log.DebugLevel},
		{slog.LevelDebug, log.DebugLevel},
		{slog.LevelInfo, log.InfoLevel},
		{slog.LevelWarn, log.WarnLevel},
		{slog.LevelError, log.ErrorLevel},
		{slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, slogToCharmLevel(tt.input), tt.input.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, multi.Enabled(context.Background(), slog.Level(-12)))

	logger := slog.New(multi.WithAttrs([]slog.Attr{slog.String("view", "detail")}).WithGroup("req"))
	logger.Info("both", slog.String("id", "a"))
	logger.Debug("debug only")

	assert.Contains(t, debugBuf.String(), "both")
	assert.Contains(t, infoBuf.String(), "both")
	assert.Contains(t, infoBuf.String(), `"view":"detail"`)
	assert.Contains(t, infoBuf.String(), `"req":{"id":"a"}`)
	assert.Contains(t, debugBuf.String(), "debug only")
	assert.NotContains(t, infoBuf.String(), "debug only")
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		field        string
		value        string
		shouldRedact bool
	}{
		{"password", "hunter2", true},
		{"authorization", "Bearer abc123", true},
		{"cookie", "session=xyz", true},
		{"secret_config", "sensitive-data", true},
		{"note", "Bearer leaked-token", true},
		{"path", "/project/rag-gpt", false},
		{"user_agent", "curl/8.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))

			logger.Info("test", slog.String(tt.field, tt.value))

			out := buf.String()
			assert.Contains(t, out, tt.field)
			if tt.shouldRedact {
				assert.NotContains(t, out, tt.value)
			} else {
				assert.Contains(t, out, tt.value)
			}
		})
	}
}

func TestDefaultRedactOptions(t *testing.T) {
	assert.Greater(t, len(DefaultRedactOptions()), 10)
}
