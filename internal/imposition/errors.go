package imposition

import (
	"errors"
	"fmt"
)

var ErrEmptyInput = errors.New("imposition: no source files to merge")

// InvalidDocumentError names the source file that could not be used.
type InvalidDocumentError struct {
	File string
	Err  error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("imposition: invalid document %q: %v", e.File, e.Err)
}

func (e *InvalidDocumentError) Unwrap() error { return e.Err }

type InvalidLayoutError struct {
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	return "imposition: invalid layout: " + e.Reason
}

type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("imposition: cannot serialize merged document: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
