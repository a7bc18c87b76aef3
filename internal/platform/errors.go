package platform

import (
	"errors"
	"fmt"
)

// ErrNotSupported marks a capability the backend's environment cannot
// offer. Callers are expected to detect it and route around it.
var ErrNotSupported = errors.New("not supported in this environment")

// ErrNotImplemented marks a method this backend does not implement.
// Portable code targeting the backend must not call it.
var ErrNotImplemented = errors.New("not implemented by this backend")

// NotSupportedError is returned by operations in the not-supported group.
type NotSupportedError struct {
	Op string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrNotSupported)
}

func (e *NotSupportedError) Unwrap() error { return ErrNotSupported }

// UnimplementedError is returned by operations in the not-implemented group.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrNotImplemented)
}

func (e *UnimplementedError) Unwrap() error { return ErrNotImplemented }

// OSError reports a failure of the host environment while creating or
// manipulating a window.
type OSError struct {
	Op  string
	Err error
}

func (e *OSError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("os error: %s: %v", e.Op, e.Err)
}

func (e *OSError) Unwrap() error { return e.Err }
