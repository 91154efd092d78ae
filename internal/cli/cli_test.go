package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/brm/internal/config"
	"github.com/babarot/brm/internal/location"
	"github.com/babarot/brm/internal/record"
	"github.com/babarot/brm/internal/trash"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	CLI
	root   string
	loc    location.Locations
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestCLI(t *testing.T, opt Option) *testCLI {
	t.Helper()
	color.NoColor = true

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	loc := location.Locations{
		TrashDir:   filepath.Join(root, "trash"),
		RecordPath: filepath.Join(root, "config", "original_path.toml"),
	}
	require.NoError(t, os.MkdirAll(loc.TrashDir, 0755))

	engine, err := trash.New(loc, record.New(loc.RecordPath), nil, trash.WithConfirmer(trash.AlwaysConfirm))
	require.NoError(t, err)

	cfg := config.NewDefaultConfig()
	cfg.PathToTrash = loc.TrashDir

	tc := &testCLI{root: root, loc: loc, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	tc.CLI = CLI{
		option: opt,
		config: cfg,
		engine: engine,
		stdout: tc.out,
		stderr: tc.errOut,
	}
	return tc
}

func (tc *testCLI) file(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(tc.root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckConflicts(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		args    []string
		wantErr bool
	}{
		{name: "paths only", args: []string{"a", "b"}},
		{name: "force with paths", opt: Option{Force: true}, args: []string{"a"}},
		{name: "restore with names", opt: Option{Restore: true}, args: []string{"a"}},
		{name: "restore alone", opt: Option{Restore: true}},
		{name: "list alone", opt: Option{List: true}},
		{name: "fzf alone", opt: Option{Fzf: true}},
		{name: "fzf with force", opt: Option{Fzf: true, Force: true}},
		{name: "list and restore", opt: Option{List: true, Restore: true}, wantErr: true},
		{name: "empty and trash path", opt: Option{Empty: true, TrashPath: true}, wantErr: true},
		{name: "list with paths", opt: Option{List: true}, args: []string{"a"}, wantErr: true},
		{name: "empty with force", opt: Option{Empty: true, Force: true}, wantErr: true},
		{name: "restore with force", opt: Option{Restore: true, Force: true}, wantErr: true},
		{name: "set trash path with paths", opt: Option{SetTrashPath: "/x"}, args: []string{"a"}, wantErr: true},
		{name: "completions and list", opt: Option{Completions: "bash", List: true}, wantErr: true},
		{name: "fzf with paths", opt: Option{Fzf: true}, args: []string{"a"}, wantErr: true},
		{name: "fzf with restore", opt: Option{Fzf: true, Restore: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConflicts(tt.opt, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	assert.NoError(t, formatErrors(nil))

	single := errors.New("boom")
	assert.Equal(t, single, formatErrors([]error{single}))

	err := formatErrors([]error{errors.New("first"), errors.New("second")})
	require.Error(t, err)
	assert.Equal(t, "2 errors occurred:\n  * first\n  * second\n", err.Error())
}

func TestPutAndRestore(t *testing.T) {
	tc := newTestCLI(t, Option{})
	path := tc.file(t, "report.txt", "data")

	require.NoError(t, tc.Put([]string{path}))
	assert.Contains(t, tc.out.String(), "trashed "+path)
	assert.NoFileExists(t, path)

	tc.out.Reset()
	require.NoError(t, tc.Restore([]string{"report.txt"}))
	assert.Contains(t, tc.out.String(), "restored "+path)
	assert.FileExists(t, path)
}

func TestPutCollisionPrintsRestoreHint(t *testing.T) {
	tc := newTestCLI(t, Option{})
	require.NoError(t, os.WriteFile(filepath.Join(tc.loc.TrashDir, "report.txt"), nil, 0644))
	path := tc.file(t, "report.txt", "data")

	require.NoError(t, tc.Put([]string{path}))
	assert.Contains(t, tc.out.String(), "restore with: brm -r report.txt1")
}

func TestPutPartialFailure(t *testing.T) {
	tc := newTestCLI(t, Option{})
	path := tc.file(t, "a.txt", "a")
	missing := filepath.Join(tc.root, "missing.txt")

	// one success keeps the exit status clean
	require.NoError(t, tc.Put([]string{missing, path}))
	assert.Contains(t, tc.errOut.String(), missing)
	assert.NoFileExists(t, path)
}

func TestPutAllFailed(t *testing.T) {
	tc := newTestCLI(t, Option{})
	err := tc.Put([]string{filepath.Join(tc.root, "missing.txt")})
	require.Error(t, err)
	assert.True(t, trash.IsNotFound(err))
}

func TestPutWithoutArguments(t *testing.T) {
	tc := newTestCLI(t, Option{})
	assert.Error(t, tc.Put(nil))
}

func TestRestoreUnknownName(t *testing.T) {
	tc := newTestCLI(t, Option{})
	err := tc.Restore([]string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no restore path found")
	assert.Contains(t, tc.errOut.String(), "brm --list")
}

func TestRestoreQuietWhenNotVerbose(t *testing.T) {
	tc := newTestCLI(t, Option{})
	tc.config.Restore.Verbose = false
	path := tc.file(t, "a.txt", "a")

	require.NoError(t, tc.Put([]string{path}))
	tc.out.Reset()
	require.NoError(t, tc.Restore([]string{"a.txt"}))
	assert.Empty(t, tc.out.String())
}

func TestEmpty(t *testing.T) {
	tc := newTestCLI(t, Option{Empty: true})
	require.NoError(t, tc.Put([]string{tc.file(t, "a.txt", "a"), tc.file(t, "b.txt", "b")}))

	tc.out.Reset()
	require.NoError(t, tc.Empty())
	assert.Contains(t, tc.out.String(), "Successfully removed 2 entries.")

	entries, err := os.ReadDir(tc.loc.TrashDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList(t *testing.T) {
	tc := newTestCLI(t, Option{List: true})
	require.NoError(t, tc.List())
	assert.Contains(t, tc.out.String(), "The trash is empty.")

	path := tc.file(t, "notes.txt", "hello")
	require.NoError(t, tc.Put([]string{path}))
	require.NoError(t, os.WriteFile(filepath.Join(tc.loc.TrashDir, "stray"), nil, 0644))

	tc.out.Reset()
	require.NoError(t, tc.List())
	out := tc.out.String()
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "(no restore path)")
	assert.Contains(t, out, "2 entries in "+tc.loc.TrashDir)
}

func TestListRow(t *testing.T) {
	color.NoColor = true

	row := listRow(trash.Entry{Name: "d", OriginalPath: "/x/d", Size: 2048, IsDir: true})
	assert.Equal(t, []string{"d", "2.0 kB", "directory", "/x/d"}, row)

	row = listRow(trash.Entry{Name: "gone", OriginalPath: "/x/gone", Orphaned: true})
	assert.Equal(t, []string{"gone", "-", "-", "/x/gone (missing from trash)"}, row)
}

func TestPrintTrashPath(t *testing.T) {
	tc := newTestCLI(t, Option{TrashPath: true})
	require.NoError(t, tc.PrintTrashPath())
	assert.Equal(t, "This is the current trash directory.\n"+tc.loc.TrashDir+"\n", tc.out.String())
}

func TestChangeTrashPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	tc := newTestCLI(t, Option{Config: configPath})
	newDir := filepath.Join(tc.root, "elsewhere")

	require.NoError(t, tc.ChangeTrashPath(newDir))
	assert.DirExists(t, newDir)

	cfg, err := config.Parse(configPath)
	require.NoError(t, err)
	assert.Equal(t, newDir, cfg.PathToTrash)
}

func TestChangeTrashPathRefusedWithPendingEntries(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	tc := newTestCLI(t, Option{Config: configPath})
	require.NoError(t, tc.Put([]string{tc.file(t, "a.txt", "a")}))

	newDir := filepath.Join(tc.root, "elsewhere")
	err := tc.ChangeTrashPath(newDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.txt")
	assert.NoDirExists(t, newDir)
	assert.NoFileExists(t, configPath)
}

func TestChangeTrashPathSameDirectory(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	tc := newTestCLI(t, Option{Config: configPath})

	require.NoError(t, tc.ChangeTrashPath(tc.loc.TrashDir))
	assert.Contains(t, tc.out.String(), "already")
	assert.NoFileExists(t, configPath)
}

func TestPrintCompletion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCompletion(&buf, "bash", "brm"))
	assert.Contains(t, buf.String(), "complete -o default -F _brm brm")

	assert.Error(t, printCompletion(&buf, "powershell", "brm"))
}

func TestVersionPrint(t *testing.T) {
	out := Version{AppName: "brm", Version: "v1.2.3", Revision: "abc123", BuildDate: "2026-01-02"}.Print()

	assert.Contains(t, out, "brm v1.2.3\n")
	assert.Contains(t, out, "revision:   abc123")
	assert.Contains(t, out, "build date: 2026-01-02")
	assert.Contains(t, out, appURL)
}
