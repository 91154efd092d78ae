package location

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/brm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	record := filepath.Join(home, ".config", "brm", "original_path.toml")
	loc, err := Resolve(config.Config{PathToTrash: "~/.local/share/brm/trash"}, record)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "brm", "trash"), loc.TrashDir)
	assert.Equal(t, record, loc.RecordPath)

	fi, err := os.Stat(loc.TrashDir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	fi, err = os.Stat(filepath.Dir(record))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestResolveExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MY_TRASH", dir)

	loc, err := Resolve(config.Config{PathToTrash: "$MY_TRASH/"}, filepath.Join(dir, "records.toml"))
	require.NoError(t, err)
	assert.Equal(t, dir, loc.TrashDir)
}

func TestResolveErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	record := filepath.Join(dir, "records.toml")

	tests := []struct {
		name   string
		trash  string
		record string
	}{
		{name: "relative trash", trash: "trash", record: record},
		{name: "empty trash", trash: "", record: record},
		{name: "trash is a file", trash: file, record: record},
		{name: "unclosed variable", trash: "${HOME", record: record},
		{name: "relative record", trash: dir, record: "records.toml"},
		{name: "record parent is a file", trash: dir, record: filepath.Join(file, "records.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(config.Config{PathToTrash: tt.trash}, tt.record)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "got %T", err)
		})
	}
}
