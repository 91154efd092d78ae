package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/docker/go-units"
)

// RotateWriter appends to a log file. Once the file reaches its size limit
// it is shifted to path.1, older files move up by one and only keep of
// them survive, path.<keep> being the oldest.
type RotateWriter struct {
	path  string
	limit int64
	keep  int

	mu      sync.Mutex
	f       *os.File
	written int64
}

// NewRotateWriter opens path for appending. maxSize is a human size like
// "10MB".
func NewRotateWriter(path, maxSize string, maxFiles int) (*RotateWriter, error) {
	limit, err := units.FromHumanSize(maxSize)
	if err != nil {
		return nil, fmt.Errorf("invalid max size %q: %w", maxSize, err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("max size must be positive, got %q", maxSize)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &RotateWriter{
		path:  path,
		limit: limit,
		keep:  max(maxFiles, 1),
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RotateWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f == nil {
		return 0, os.ErrClosed
	}

	// a single oversized write still lands in a fresh file
	if w.written > 0 && w.written+int64(len(p)) > w.limit {
		if err := w.shift(); err != nil {
			return 0, fmt.Errorf("rotate %s: %w", w.path, err)
		}
	}

	n, err := w.f.Write(p)
	w.written += int64(n)
	return n, err
}

func (w *RotateWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *RotateWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f, w.written = f, fi.Size()
	return nil
}

// shift expects w.mu to be held
func (w *RotateWriter) shift() error {
	if err := w.f.Close(); err != nil {
		return err
	}
	w.f = nil

	if err := os.Remove(w.backup(w.keep)); err != nil && !os.IsNotExist(err) {
		return err
	}
	for i := w.keep - 1; i >= 1; i-- {
		if err := os.Rename(w.backup(i), w.backup(i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if err := os.Rename(w.path, w.backup(1)); err != nil && !os.IsNotExist(err) {
		return err
	}

	return w.open()
}

func (w *RotateWriter) backup(i int) string {
	return w.path + "." + strconv.Itoa(i)
}
