package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/hillpath/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, "ParseLevel(%q)", in)
		assert.Equal(t, want, got, "ParseLevel(%q)", in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelInfo)

	l.Info("solved", "part", 1, "steps", 31)
	line := strings.TrimSuffix(buf.String(), "\n")
	fields := strings.Fields(line)
	require.Len(t, fields, 6, "line %q", line)
	assert.Equal(t, "INFO", fields[2])
	assert.Equal(t, "solved", fields[3])
	assert.Equal(t, "part=1", fields[4])
	assert.Equal(t, "steps=31", fields[5])
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l = logging.New(&buf, slog.LevelDebug)
	l.Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG shown")
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelInfo).With("run", "a").WithGroup("grid")
	l.Info("parsed", "width", 8)

	out := buf.String()
	assert.Contains(t, out, "run=a")
	assert.Contains(t, out, "grid.width=8")
}
