package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.toml")

	if err := WriteFile(path, []byte("first"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := WriteFile(path, []byte("second"), 0600); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "second" {
		t.Fatalf("Content mismatch. Expected %q, got %q", "second", content)
	}

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected only the target file, got %d entries", len(entries))
	}
}

func TestSafeWriterCleanup(t *testing.T) {
	dir := t.TempDir()

	w, err := NewSafeWriter(dir, "x", 0600)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	w.Cleanup()

	if _, err := os.Stat(w.Name()); !os.IsNotExist(err) {
		t.Fatal("Temporary file should be removed after cleanup")
	}
	if _, err := w.Write([]byte("more")); err == nil {
		t.Fatal("Expected error when writing to a finished writer")
	}
	if err := w.Commit(filepath.Join(dir, "dst")); err == nil {
		t.Fatal("Expected error when committing a finished writer")
	}
}

func TestSafeWriterCommitThenCleanup(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst")

	w, err := NewSafeWriter(dir, "dst", 0600)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	_, _ = w.Write([]byte("kept"))
	if err := w.Commit(dst); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	w.Cleanup()

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Committed file should survive cleanup: %v", err)
	}
	if string(content) != "kept" {
		t.Fatalf("Content mismatch. Expected %q, got %q", "kept", content)
	}
}
