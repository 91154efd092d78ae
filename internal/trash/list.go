package trash

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/babarot/brm/internal/fs"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

const sizeWorkers = 8

// Entry is one line of the trash listing
type Entry struct {
	// Name is the trashed name
	Name string

	// OriginalPath is empty for untracked entries
	OriginalPath string

	Size  int64
	IsDir bool

	// MIME is the detected content type of regular files
	MIME string

	// Orphaned marks a record whose entry is gone from the trash
	Orphaned bool

	// Untracked marks an entry in the trash without a record
	Untracked bool
}

// Restorable reports whether Restore can succeed for this entry as far as
// the trash is concerned
func (e Entry) Restorable() bool {
	return !e.Orphaned && !e.Untracked
}

// List joins the record store with the trash directory, sorted by name
func (e *Engine) List() ([]Entry, error) {
	records, err := e.store.Load()
	if err != nil {
		return nil, NewStorageError("list", e.loc.TrashDir, err)
	}

	dirEntries, err := os.ReadDir(e.loc.TrashDir)
	if err != nil {
		return nil, NewStorageError("list", e.loc.TrashDir, err)
	}

	present := make(map[string]bool, len(dirEntries))
	regular := make(map[string]bool, len(dirEntries))
	entries := make([]Entry, 0, len(dirEntries)+len(records))
	for _, d := range dirEntries {
		present[d.Name()] = true
		regular[d.Name()] = d.Type().IsRegular()
		original, ok := records[d.Name()]
		entries = append(entries, Entry{
			Name:         d.Name(),
			OriginalPath: original,
			IsDir:        d.IsDir(),
			Untracked:    !ok,
		})
	}
	for name, original := range records {
		if !present[name] {
			entries = append(entries, Entry{Name: name, OriginalPath: original, Orphaned: true})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	var eg errgroup.Group
	eg.SetLimit(sizeWorkers)
	for i := range entries {
		if entries[i].Orphaned {
			continue
		}
		entry := &entries[i]
		eg.Go(func() error {
			path := filepath.Join(e.loc.TrashDir, entry.Name)
			size, err := fs.DirSize(path)
			if err != nil {
				// a broken size must not hide the entry
				slog.Warn("failed to compute size", "path", path, "error", err)
			}
			entry.Size = size
			// opening a FIFO or device blocks, so only sniff regular files
			if regular[entry.Name] {
				if mtype, err := mimetype.DetectFile(path); err == nil {
					entry.MIME = mtype.String()
				}
			}
			return nil
		})
	}
	_ = eg.Wait()

	return entries, nil
}

// Pending returns the names of recorded entries that still sit in the trash
func (e *Engine) Pending() ([]string, error) {
	entries, err := e.List()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Restorable() {
			names = append(names, entry.Name)
		}
	}
	return names, nil
}
