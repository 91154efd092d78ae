package trash

import "errors"

var (
	// ErrNotFound is returned when a path to trash, or a trashed entry, does not exist
	ErrNotFound = errors.New("no such file or directory")

	// ErrConflict is returned when restoring onto a path that is occupied
	ErrConflict = errors.New("destination already exists")

	// ErrNoRestorePath is returned when no record exists for a trashed name
	ErrNoRestorePath = errors.New("no restore path found")

	// ErrInvalidName is returned for names that cannot identify a trashed entry
	ErrInvalidName = errors.New("invalid trashed name")

	// ErrProtectedPath is returned for paths that are never trashed or deleted
	ErrProtectedPath = errors.New("refusing to remove protected path")
)

// StorageError wraps an error with additional context about the operation
type StorageError struct {
	// Op is the operation that failed (e.g., "trash", "restore", "purge")
	Op string

	// Path is the path of the file that caused the error
	Path string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(op, path string, err error) error {
	return &StorageError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsNotFound returns true if the error is ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict returns true if the error is ErrConflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNoRestorePath returns true if the error is ErrNoRestorePath
func IsNoRestorePath(err error) bool {
	return errors.Is(err, ErrNoRestorePath)
}

// IsInvalidName returns true if the error is ErrInvalidName
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrInvalidName)
}

// IsProtectedPath returns true if the error is ErrProtectedPath
func IsProtectedPath(err error) bool {
	return errors.Is(err, ErrProtectedPath)
}
