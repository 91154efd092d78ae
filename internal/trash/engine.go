package trash

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/babarot/brm/internal/fs"
	"github.com/babarot/brm/internal/location"
	"github.com/babarot/brm/internal/record"
)

// RecordStore persists trashed name -> original path
type RecordStore interface {
	Load() (record.Records, error)
	Get(name string) (string, bool, error)
	Put(name, originalPath string) error
	Delete(names ...string) error
	Clear() error
}

// Engine trashes, restores and purges entries of a single trash directory.
// It is not safe for concurrent use.
type Engine struct {
	loc       location.Locations
	store     RecordStore
	confirmer Confirmer
	protector *protector
}

// Option configures an Engine
type Option func(*Engine)

// WithConfirmer sets who is asked before directories are removed and the
// trash is emptied. The default declines everything.
func WithConfirmer(c Confirmer) Option {
	return func(e *Engine) {
		e.confirmer = c
	}
}

// New returns an engine for loc. patterns are protected globs, see
// config.Config.Protected.
func New(loc location.Locations, store RecordStore, patterns []string, opts ...Option) (*Engine, error) {
	protector, err := newProtector(loc, patterns)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		loc:       loc,
		store:     store,
		confirmer: NeverConfirm,
		protector: protector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// TrashDir returns the trash directory the engine works on
func (e *Engine) TrashDir() string {
	return e.loc.TrashDir
}

// Trash moves path into the trash and records where it came from. With
// force the path is removed permanently and nothing is recorded.
// Directories are only touched after confirmation; a declined prompt
// yields ActionSkipped and no error.
func (e *Engine) Trash(path string, force bool) (Outcome, error) {
	if fs.IsUnsafePath(path) {
		return Outcome{}, NewStorageError("trash", path, ErrProtectedPath)
	}

	fi, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return Outcome{}, NewStorageError("trash", path, ErrNotFound)
	}
	if err != nil {
		return Outcome{}, NewStorageError("trash", path, err)
	}

	abs, err := canonicalize(path)
	if err != nil {
		return Outcome{}, NewStorageError("trash", path, err)
	}
	if err := e.protector.check(abs); err != nil {
		return Outcome{}, NewStorageError("trash", abs, err)
	}

	if fi.IsDir() {
		prompt := fmt.Sprintf("%s is a directory. Are you sure?", path)
		if force {
			prompt = fmt.Sprintf("%s is a directory. Delete it permanently?", path)
		}
		if !e.confirmer.Confirm(prompt) {
			slog.Info("skipped directory", "path", abs)
			return Outcome{Action: ActionSkipped, Path: abs}, nil
		}
	}

	if force {
		return e.remove(abs, fi.IsDir())
	}
	return e.moveToTrash(abs)
}

func (e *Engine) remove(abs string, isDir bool) (Outcome, error) {
	var err error
	if isDir {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return Outcome{}, NewStorageError("delete", abs, err)
	}

	slog.Info("permanently deleted", "path", abs, "dir", isDir)
	return Outcome{Action: ActionDeleted, Path: abs}, nil
}

// moveToTrash records the entry first and rolls the record back when the
// move fails, so a trashed entry never exists without its record.
func (e *Engine) moveToTrash(abs string) (Outcome, error) {
	if err := record.Encodable(abs); err != nil {
		return Outcome{}, NewStorageError("trash", abs, err)
	}

	recorded, err := e.store.Load()
	if err != nil {
		return Outcome{}, NewStorageError("record", abs, err)
	}
	name := ResolveName(e.loc.TrashDir, filepath.Base(abs), recorded)
	dst := filepath.Join(e.loc.TrashDir, name)

	if err := e.store.Put(name, abs); err != nil {
		return Outcome{}, NewStorageError("record", abs, err)
	}

	if err := fs.Move(abs, dst, fs.MoveOptions{AllowCrossDev: true}); err != nil {
		if rbErr := e.store.Delete(name); rbErr != nil {
			slog.Error("failed to roll back restore record", "name", name, "error", rbErr)
			return Outcome{}, NewStorageError("trash", abs,
				fmt.Errorf("%w (rolling back record %q also failed: %v)", err, name, rbErr))
		}
		return Outcome{}, NewStorageError("trash", abs, err)
	}

	slog.Info("moved to trash", "from", abs, "to", dst, "name", name)
	return Outcome{Action: ActionTrashed, Path: abs, Name: name}, nil
}

// canonicalize makes path absolute and resolves symlinks in its parent.
// The last element is kept, so a symlink is recorded where it lives.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, filepath.Base(abs)), nil
}
