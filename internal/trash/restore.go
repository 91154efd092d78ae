package trash

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/babarot/brm/internal/fs"
)

// Restore moves the trashed entry name back to the path it was trashed
// from and forgets its record. name may also be a path inside the trash
// directory; only its last element is used. An occupied original path is
// never overwritten.
func (e *Engine) Restore(name string) (Outcome, error) {
	name, err := trashedName(name)
	if err != nil {
		return Outcome{}, err
	}

	original, ok, err := e.store.Get(name)
	if err != nil {
		return Outcome{}, NewStorageError("restore", name, err)
	}
	if !ok {
		return Outcome{}, NewStorageError("restore", name, ErrNoRestorePath)
	}

	if fs.Exists(original) {
		return Outcome{}, NewStorageError("restore", original, ErrConflict)
	}

	src := filepath.Join(e.loc.TrashDir, name)
	if !fs.Exists(src) {
		// the record stays so the user can inspect it
		return Outcome{}, NewStorageError("restore", src, ErrNotFound)
	}

	if err := os.MkdirAll(filepath.Dir(original), 0755); err != nil {
		return Outcome{}, NewStorageError("restore", original, err)
	}

	if err := fs.Move(src, original, fs.MoveOptions{AllowCrossDev: true}); err != nil {
		if fs.IsDestinationExists(err) {
			return Outcome{}, NewStorageError("restore", original, ErrConflict)
		}
		return Outcome{}, NewStorageError("restore", original, err)
	}

	if err := e.store.Delete(name); err != nil {
		// put the entry back so that entry and record still agree
		if mvErr := fs.Move(original, src, fs.MoveOptions{AllowCrossDev: true}); mvErr != nil {
			slog.Error("restored entry left without record cleanup", "name", name, "path", original, "error", mvErr)
			return Outcome{}, NewStorageError("restore", original,
				fmt.Errorf("%w (moving it back into the trash also failed: %v)", err, mvErr))
		}
		return Outcome{}, NewStorageError("restore", name, err)
	}

	slog.Info("restored", "name", name, "to", original)
	return Outcome{Action: ActionRestored, Path: original, Name: name}, nil
}

func trashedName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", NewStorageError("restore", name, ErrInvalidName)
	}
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", NewStorageError("restore", name, ErrInvalidName)
	}
	return base, nil
}
