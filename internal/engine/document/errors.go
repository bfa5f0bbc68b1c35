package document

import (
	"errors"
	"fmt"
)

// Document errors.
var (
	// ErrNoPath indicates the document has never been given a file path.
	ErrNoPath = errors.New("no file path")

	// ErrIsDirectory indicates the path names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// OperationError records a failed file operation on a document.
type OperationError struct {
	Op     string // Operation name ("open", "save")
	Target string // File path
	Err    error  // Underlying error
}

func newOpError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
