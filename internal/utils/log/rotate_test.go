package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "debug.log")

	w, err := NewRotateWriter(path, "10B", 2)
	require.NoError(t, err)
	defer w.Close()

	for _, line := range []string{"aaaaaaa\n", "bbbbbbb\n", "ccccccc\n", "ddddddd\n"} {
		_, err := w.Write([]byte(line))
		require.NoError(t, err)
	}

	read := func(name string) string {
		t.Helper()
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, "ddddddd\n", read(path))
	assert.Equal(t, "ccccccc\n", read(path+".1"))
	assert.Equal(t, "bbbbbbb\n", read(path+".2"))
	// the oldest file has been dropped
	assert.NoFileExists(t, path+".3")
}

func TestRotateWriterAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("123456"), 0644))

	w, err := NewRotateWriter(path, "8B", 1)
	require.NoError(t, err)
	defer w.Close()

	// the existing six bytes count against the limit
	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)

	data, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, "123456", string(data))
}

func TestRotateWriterClosed(t *testing.T) {
	w, err := NewRotateWriter(filepath.Join(t.TempDir(), "debug.log"), "1KB", 1)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestRotateWriterInvalidSize(t *testing.T) {
	_, err := NewRotateWriter(filepath.Join(t.TempDir(), "x.log"), "lots", 1)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(UseOutput(&buf), UseLevel(DebugLevel), UseReportTimestamp(false))

	logger.Debug("moved to trash", "name", "report.txt1")
	logger.Info("also shown")

	out := buf.String()
	assert.Contains(t, out, "moved to trash")
	assert.Contains(t, out, "report.txt1")
	assert.Contains(t, out, "also shown")
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(UseOutput(&buf), UseLevel(WarnLevel))

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
