package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centreconnect/centreconnect/internal/shared/config"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		minLevel   slog.Level
		wantSource bool
	}{
		{name: "info below warn threshold", level: slog.LevelInfo, minLevel: slog.LevelWarn, wantSource: false},
		{name: "warn at threshold", level: slog.LevelWarn, minLevel: slog.LevelWarn, wantSource: true},
		{name: "error above threshold", level: slog.LevelError, minLevel: slog.LevelWarn, wantSource: true},
		{name: "debug with debug threshold", level: slog.LevelDebug, minLevel: slog.LevelDebug, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.level, "formatted value")

			output := buf.String()
			assert.Equal(t, tt.wantSource, strings.Contains(output, "source="), output)
			if tt.wantSource {
				assert.Contains(t, output, "logger_test.go")
			}
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).
		With("component", "format").
		WithGroup("input")

	log.Info("slug generated", "text", "Hello, World!")

	output := buf.String()
	assert.NotContains(t, output, "source=")
	assert.Contains(t, output, "component=format")
	assert.Contains(t, output, "input.text=")
}

func TestSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.LoggerConfig{Level: "debug", Format: "json"}, false)

	log.Debug("config loaded", "locale", "en-ZA")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "config loaded", record["msg"])
	assert.Equal(t, "en-ZA", record["locale"])
	assert.NotContains(t, record, "source")
}

func TestNew_ConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.LoggerConfig{Level: "warn", Format: "console"}, false)

	log.Info("hidden")
	log.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")

	SetLevel(slog.LevelDebug)
	log.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		if output != nil {
			_ = output.Close()
			output = nil
		}
		Logger = nil
	})

	require.NoError(t, Init(&config.LoggerConfig{Level: "info", OutputPath: filepath.Join(dir, "first.log")}, false))
	first := output
	require.NotNil(t, first)

	require.NoError(t, Init(&config.LoggerConfig{Level: "info", OutputPath: filepath.Join(dir, "second.log")}, false))
	assert.NotSame(t, first, output)

	_, err := first.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)

	Info("second file only")
	data, err := os.ReadFile(filepath.Join(dir, "second.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "second file only")
}

func TestInit_StderrIsNotTracked(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init(&config.LoggerConfig{Level: "info", OutputPath: "stderr"}, false))
	assert.Nil(t, output)
}
