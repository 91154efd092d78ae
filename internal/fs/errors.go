package fs

import (
	"errors"
	"syscall"
)

var (
	ErrInvalidPath       = errors.New("empty source or destination")
	ErrSourceNotFound    = errors.New("source does not exist")
	ErrDestinationExists = errors.New("destination is occupied")
	ErrCrossDeviceMove   = errors.New("source and destination are on different devices")
)

// MoveError tells which step of a move failed
type MoveError struct {
	Op  string
	Src string
	Dst string
	Err error
}

func (e *MoveError) Error() string {
	return "move " + e.Src + " -> " + e.Dst + " (" + e.Op + "): " + e.Err.Error()
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveError(op, src, dst string, err error) error {
	return &MoveError{Op: op, Src: src, Dst: dst, Err: err}
}

// IsCrossDevice reports whether err came from a rename across devices
func IsCrossDevice(err error) bool {
	return errors.Is(err, ErrCrossDeviceMove) || errors.Is(err, syscall.EXDEV)
}

// IsDestinationExists reports whether a move was refused because dst exists
func IsDestinationExists(err error) bool {
	return errors.Is(err, ErrDestinationExists)
}
