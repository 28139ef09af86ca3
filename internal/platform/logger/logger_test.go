package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "warn")

	l.Info("dropped")
	assert.Empty(t, buf.String(), "info should be filtered at warn level")

	l.Warn("kept", "course_id", "abc")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "abc", entry["course_id"])
}

func TestSetupSetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
}

func TestContextHelpers(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("empty context yields fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("stored logger wins", func(t *testing.T) {
		stored := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithContext(context.Background(), stored)
		assert.Same(t, stored, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, stored, logger.FromContext(ctx))
	})

	t.Run("nil fallback yields default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	})
}
