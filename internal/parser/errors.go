package parser

import (
	"errors"
	"fmt"
)

// ErrUnknownArguments means an add command carried no recognized task word.
// Because unmatched input classifies as an add command, this is also what a
// wholly unrecognized command surfaces as.
var ErrUnknownArguments = errors.New("unknown command arguments")

// NoDescriptionError means an add command was missing its free-text content.
type NoDescriptionError struct {
	Command string
}

func (e *NoDescriptionError) Error() string {
	return fmt.Sprintf("the description of a %s cannot be empty", e.Command)
}

// DateError means a date segment was present but not an ISO calendar date.
type DateError struct {
	Input string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("bad date %q: expected YYYY-MM-DD", e.Input)
}

// Unwrap returns the underlying parse error.
func (e *DateError) Unwrap() error {
	return e.Err
}

// IndexFormatError means the argument to done/delete was not an integer.
type IndexFormatError struct {
	Input string
	Err   error
}

func (e *IndexFormatError) Error() string {
	return fmt.Sprintf("index %q is not an integer", e.Input)
}

// Unwrap returns the underlying Atoi error.
func (e *IndexFormatError) Unwrap() error {
	return e.Err
}
