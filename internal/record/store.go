// Package record persists the mapping from trashed entry names to the
// absolute paths they were trashed from.
package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/babarot/brm/internal/fs"
	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 100 * time.Millisecond
)

var (
	// ErrLockTimeout is returned when another process holds the record file lock too long
	ErrLockTimeout = errors.New("timed out waiting for restore record lock")

	// ErrInvalidEncoding is returned for names and paths that are not valid
	// UTF-8, which the record file cannot hold
	ErrInvalidEncoding = errors.New("name is not valid UTF-8")
)

// Records maps a trashed entry name to its original absolute path
type Records map[string]string

// Entry is a single restore record
type Entry struct {
	Name         string
	OriginalPath string
}

// Names returns the record keys in sorted order
func (r Records) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store is a flat TOML key/value file. Every operation reads the whole
// file and rewrites it atomically while holding an advisory lock on
// "<path>.lock".
type Store struct {
	path        string
	lockTimeout time.Duration
}

// Option configures a Store
type Option func(*Store)

// WithLockTimeout bounds how long an operation waits for the file lock.
// Non-positive values keep the default.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// New returns a store backed by the file at path. The file itself is
// created lazily on the first write.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:        path,
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the record file location
func (s *Store) Path() string {
	return s.path
}

// Load returns every record. A missing file is an empty store.
func (s *Store) Load() (Records, error) {
	var records Records
	err := s.withLock(false, func() error {
		var err error
		records, err = s.read()
		return err
	})
	return records, err
}

// Entries returns every record sorted by name
func (s *Store) Entries() ([]Entry, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(records))
	for _, name := range records.Names() {
		entries = append(entries, Entry{Name: name, OriginalPath: records[name]})
	}
	return entries, nil
}

// Get looks up the original path recorded for name
func (s *Store) Get(name string) (string, bool, error) {
	records, err := s.Load()
	if err != nil {
		return "", false, err
	}
	path, ok := records[name]
	return path, ok, nil
}

// Put records name -> originalPath, replacing any existing entry
func (s *Store) Put(name, originalPath string) error {
	if err := Encodable(name, originalPath); err != nil {
		return err
	}
	return s.update(func(records Records) bool {
		records[name] = originalPath
		return true
	})
}

// Encodable reports ErrInvalidEncoding for the first of values the record
// file cannot hold
func Encodable(values ...string) error {
	for _, v := range values {
		if !utf8.ValidString(v) {
			return fmt.Errorf("%q: %w", v, ErrInvalidEncoding)
		}
	}
	return nil
}

// Delete removes the records for names. Unknown names are ignored.
func (s *Store) Delete(names ...string) error {
	return s.update(func(records Records) bool {
		changed := false
		for _, name := range names {
			if _, ok := records[name]; ok {
				delete(records, name)
				changed = true
			}
		}
		return changed
	})
}

// Clear drops every record. The file is rewritten without being parsed,
// so Clear also recovers from a corrupt file.
func (s *Store) Clear() error {
	return s.withLock(true, func() error {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return nil
		}
		return s.write(Records{})
	})
}

// update runs a read-modify-write cycle under the exclusive lock. fn
// reports whether it changed anything; unchanged stores are not rewritten.
func (s *Store) update(fn func(Records) bool) error {
	return s.withLock(true, func() error {
		records, err := s.read()
		if err != nil {
			return err
		}
		if !fn(records) {
			return nil
		}
		return s.write(records)
	})
}

func (s *Store) withLock(exclusive bool, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = lock.TryRLockContext(ctx, lockRetryDelay)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrLockTimeout
	}
	if err != nil {
		return fmt.Errorf("failed to acquire record lock: %w", err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

func (s *Store) read() (Records, error) {
	records := make(Records)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read restore records: %w", err)
	}

	if err := toml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse restore records %s: %w", s.path, err)
	}
	return records, nil
}

func (s *Store) write(records Records) error {
	data, err := toml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode restore records: %w", err)
	}
	// never replace a readable file with one that does not parse back
	var check Records
	if err := toml.Unmarshal(data, &check); err != nil {
		return fmt.Errorf("failed to encode restore records: %w", err)
	}
	if err := fs.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write restore records: %w", err)
	}
	slog.Debug("restore records written", "path", s.path, "count", len(records))
	return nil
}
