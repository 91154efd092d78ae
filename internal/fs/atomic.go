package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SafeWriter writes into a uniquely named temporary file next to its final
// destination. Nothing is visible at the destination until Commit.
type SafeWriter struct {
	path     string
	file     *os.File
	finished bool
}

// NewSafeWriter creates the temporary file in dir
func NewSafeWriter(dir, prefix string, perm os.FileMode) (*SafeWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", prefix, uuid.New().String()))

	// O_EXCL reserves the name
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &SafeWriter{
		path: path,
		file: f,
	}, nil
}

// Name returns the path of the temporary file
func (w *SafeWriter) Name() string {
	return w.path
}

// Write writes data to the temporary file
func (w *SafeWriter) Write(p []byte) (n int, err error) {
	if w.finished {
		return 0, errors.New("write to finished writer")
	}
	return w.file.Write(p)
}

// Commit flushes the temporary file and renames it to dst
func (w *SafeWriter) Commit(dst string) error {
	if w.finished {
		return errors.New("commit finished writer")
	}
	w.finished = true

	if err := w.file.Sync(); err != nil {
		w.discard()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		w.discard()
		return fmt.Errorf("close file: %w", err)
	}

	if err := os.Rename(w.path, dst); err != nil {
		_ = os.Remove(w.path)
		return fmt.Errorf("rename to destination: %w", err)
	}

	return nil
}

// Cleanup removes the temporary file unless it has been committed
func (w *SafeWriter) Cleanup() {
	if w.finished {
		return
	}
	w.finished = true
	w.discard()
}

func (w *SafeWriter) discard() {
	_ = w.file.Close()
	_ = os.Remove(w.path)
}

// WriteFile atomically replaces path with data
func WriteFile(path string, data []byte, perm os.FileMode) error {
	w, err := NewSafeWriter(filepath.Dir(path), filepath.Base(path), perm)
	if err != nil {
		return err
	}
	defer w.Cleanup()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	return w.Commit(path)
}
