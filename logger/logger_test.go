package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, LevelDebug, level)

	level, err = ParseLevel("warning")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn)
	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)
	l.Error("shown %d", 3)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] shown 2")
	require.Contains(t, buf.String(), "[ERROR] shown 3")
}

func TestConfigureOpensFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coco.log")
	l := NewWithWriter(&bytes.Buffer{}, LevelInfo)
	require.NoError(t, l.Configure("debug", path))
	l.Debug("bus message %s", "builder:next")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] bus message builder:next")
}

func TestNilLoggerIsSilent(t *testing.T) {
	t.Parallel()

	var l *Logger
	l.Info("nothing")
	require.NoError(t, l.Close())
	require.NoError(t, l.Configure("debug", ""))
}
