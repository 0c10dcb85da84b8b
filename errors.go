package parset

import (
	"errors"
	"fmt"
)

// ErrShortCircuit is a generic error used to short-circuit a terminal operation by canceling its
// context. Terminal operations do not report it as an error.
var ErrShortCircuit = errors.New("short circuit")

// An UnsupportedOperationError is returned by operations that cannot be expressed on a ParallelSet.
// It is returned when the operation is called, before any element of the source is read.
type UnsupportedOperationError struct {
	// Op is the name of the unsupported operation.
	Op string
}

// Error implements error.
func (e *UnsupportedOperationError) Error() string {
	return "parset: " + e.Op + " is not supported on a parallel unsorted set"
}

// Unwrap returns errors.ErrUnsupported.
func (e *UnsupportedOperationError) Unwrap() error {
	return errors.ErrUnsupported
}

// An InvalidRangeError is returned by terminal operations when a SplitPolicy returns a range
// that does not lie within the source snapshot.
type InvalidRangeError struct {
	// Range is the invalid range.
	Range Range

	// Size is the number of elements in the snapshot.
	Size int
}

// Error implements error.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("parset: split range [%d, %d) is invalid for %d elements", e.Range.Low, e.Range.High, e.Size)
}

// A PanicError is used to abort a terminal operation when a function passed to a stage panics.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the stack trace of the goroutine that panicked.
	Stack []byte
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("parset: panic: %v", e.Value)
}

// Unwrap returns Value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
