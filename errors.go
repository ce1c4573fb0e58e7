// File: adf/errors.go
package adf

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned by ParseFile when the named file does not
// exist.
var ErrFileNotFound = errors.New("ADF file not found")

// ErrInvalidUTF8 is returned by ParseFile when the file content is not
// valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 in ADF input")

// ParseError reports a structural failure while parsing, with the source
// line it occurred on. Context carries the offending raw line when known.
type ParseError struct {
	Line    int
	Message string
	Context string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// ValidationError reports a path-level type conflict during a document
// operation, such as descending through a non-object value.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at path %q: %s", e.Path, e.Message)
}
