package plex

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure that should not happen on a sane
// filesystem.
type ErrorKind int

const (
	KindPathEncoding ErrorKind = iota + 1
	KindMissingName
	KindMissingParent
	KindRename
)

// String returns a short description of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindPathEncoding:
		return "path is not valid text"
	case KindMissingName:
		return "entry has no file name"
	case KindMissingParent:
		return "entry has no parent directory"
	case KindRename:
		return "rename rejected"
	default:
		return "unknown failure"
	}
}

// InvariantError is a fatal failure. Location names the check that failed
// so whoever hits it can report exactly where the run stopped.
type InvariantError struct {
	Kind     ErrorKind
	Location string
	Path     string
	Err      error
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("%s: %s: %q", e.Location, e.Kind, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvariantError) Unwrap() error { return e.Err }

// AsInvariant reports whether err carries an InvariantError and returns it.
func AsInvariant(err error) (*InvariantError, bool) {
	var ie *InvariantError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
