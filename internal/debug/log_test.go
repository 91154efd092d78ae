package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Logs(&buf, path, true, false))
	assert.Equal(t, "first\nsecond\n", buf.String())
}

func TestLogsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	err := Logs(&bytes.Buffer{}, path, true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no log file exists yet")

	err = Logs(&bytes.Buffer{}, path, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}

func TestLogsLiveRequiresLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	err := Logs(&bytes.Buffer{}, path, false, true)
	assert.Error(t, err)
}
