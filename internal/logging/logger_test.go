package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose)
	l.now = func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }
	return l
}

func TestLogger_LevelsArePrefixed(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Infof("session %s locked in", "abc")
	l.Warnf("fullscreen denied")
	l.Errorf("save preferences: %v", "disk full")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[2026-10-15T09:30:00Z] [INFO] session abc locked in", lines[0])
	assert.Equal(t, "[2026-10-15T09:30:00Z] [WARN] fullscreen denied", lines[1])
	assert.Equal(t, "[2026-10-15T09:30:00Z] [ERROR] save preferences: disk full", lines[2])
}

func TestLogger_DebugOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Debugf("hidden")
	assert.Empty(t, buf.String())

	l.SetVerbose(true)
	l.Debugf("shown %d", 1)
	assert.Contains(t, buf.String(), "[DEBUG] shown 1")
}

func TestLogger_TrailingNewlinesTrimmed(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)
	l.Infof("line\n\n")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Infof("x")
		l.Debugf("x")
		l.Warnf("x")
		l.Errorf("x")
		l.SetVerbose(true)
		assert.NoError(t, l.Close())
	})
}

func TestOpenFile_AppendsAndCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aura.log")

	l, err := OpenFile(path, false)
	require.NoError(t, err)
	l.Infof("first")
	require.NoError(t, l.Close())

	l, err = OpenFile(path, false)
	require.NoError(t, err)
	l.Infof("second")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[INFO] first")
	assert.Contains(t, content, "[INFO] second")
	assert.NotContains(t, content, "\x1b[", "file output must not carry color codes")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Infof("nothing") })
}
