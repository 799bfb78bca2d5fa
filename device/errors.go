package device

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnsupported is returned when the platform exposes no control for a device.
var ErrUnsupported = errors.New("device control not supported")

// PermissionError is returned when the OS refuses access to a device control.
type PermissionError struct {
	Op   string
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission_denied: op=%s path=%s: %v", e.Op, e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// IsPermission checks if an error is (or wraps) a PermissionError
func IsPermission(err error) (*PermissionError, bool) {
	var permErr *PermissionError
	if errors.As(err, &permErr) {
		return permErr, true
	}
	return nil, false
}

// wrapAccess converts an os error into a PermissionError or ErrUnsupported where it
// is one of those, and otherwise wraps it with the operation.
func wrapAccess(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return &PermissionError{Op: op, Path: path, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %s: %w", op, path, ErrUnsupported)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
