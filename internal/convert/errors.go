// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pdiddy/bin2csv/internal/window"
)

// Error kinds. Every error returned by this package is an *Error whose Kind
// is one of these, so callers can test with errors.Is.
var (
	ErrInputNotFound    = errors.New("input not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotADirectory    = errors.New("not a directory")
	ErrTruncatedHeader  = window.ErrTruncatedHeader
	ErrTruncatedRecord  = window.ErrTruncatedRecord
	ErrOutputWrite      = errors.New("output write failure")
	ErrIO               = errors.New("i/o failure")
)

// Error describes a failed conversion step.
type Error struct {
	Op   string // "opening", "reading", "writing", ...
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newError(op, path string, kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// openKind maps a failure to open an existing path onto an error kind.
func openKind(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrInputNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	}
	return ErrIO
}

// readKind maps a decoding failure onto an error kind.
func readKind(err error) error {
	switch {
	case errors.Is(err, ErrTruncatedHeader):
		return ErrTruncatedHeader
	case errors.Is(err, ErrTruncatedRecord):
		return ErrTruncatedRecord
	}
	return ErrIO
}
