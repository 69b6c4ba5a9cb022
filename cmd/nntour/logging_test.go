package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestLogHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	logger.With("run", 1).WithGroup("trial").Info("done", "alpha", 0.25)

	line := strings.TrimSpace(buf.String())
	require.NotContains(t, line, "hidden")
	require.True(t, strings.HasSuffix(line, "INFO done run=1 trial.alpha=0.25"), line)
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, l)

	l, err = parseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)

	_, err = parseLevel("loud")
	require.Error(t, err)
}
