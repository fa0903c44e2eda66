package pipeline

import (
	"errors"
	"fmt"
)

// ErrMultipleComponents is returned when more than one component directive
// is attached to the same element
var ErrMultipleComponents = errors.New("only one component directive per element is allowed")

// CompileError reports the element and step at which the pipeline aborted
type CompileError struct {
	Element string
	Step    string
	// Panicked is set when the step violated a precondition instead of
	// returning an error
	Panicked bool
	Err      error
}

func (e *CompileError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("%s failed on %s: %v", e.Step, e.Element, e.Err)
	}
	return fmt.Sprintf("%s: %v (in %s)", e.Step, e.Err, e.Element)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
