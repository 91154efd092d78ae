package trash

import (
	"log/slog"
	"os"
	"path/filepath"
)

// EmptyReport describes what Empty removed
type EmptyReport struct {
	// Skipped is set when the user declined
	Skipped bool

	// Removed lists the purged entry names
	Removed []string

	// Errors holds one error per entry that could not be removed
	Errors []error
}

// Empty permanently removes every entry of the trash directory after
// confirmation. Failures on single entries are collected and do not stop
// the rest. Records of purged entries are dropped; when nothing failed the
// record store is cleared entirely.
func (e *Engine) Empty() (EmptyReport, error) {
	var report EmptyReport

	entries, err := os.ReadDir(e.loc.TrashDir)
	if err != nil {
		return report, NewStorageError("empty", e.loc.TrashDir, err)
	}

	if !e.confirmer.Confirm("Permanently delete everything in the trash?") {
		slog.Info("emptying trash declined")
		report.Skipped = true
		return report, nil
	}

	for _, entry := range entries {
		path := filepath.Join(e.loc.TrashDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			report.Errors = append(report.Errors, NewStorageError("purge", path, err))
			continue
		}
		report.Removed = append(report.Removed, entry.Name())
	}

	if len(report.Errors) == 0 {
		err = e.store.Clear()
	} else if len(report.Removed) > 0 {
		err = e.store.Delete(report.Removed...)
	}
	if err != nil {
		return report, NewStorageError("empty", "", err)
	}

	slog.Info("trash emptied", "removed", len(report.Removed), "failed", len(report.Errors))
	return report, nil
}
