package parset

import (
	"context"
	"errors"
	"runtime/debug"
)

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}

// operationErr returns the cause of the cancelation of a terminal operation's context,
// or nil if the operation was short-circuited or not canceled at all.
func operationErr(ctx context.Context) error {
	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		return nil
	}

	return err
}

// recoverCancel cancels the operation with a PanicError if the calling goroutine is panicking.
// It must be called directly by a deferred statement.
func recoverCancel(cancel context.CancelCauseFunc) {
	if r := recover(); r != nil {
		cancel(&PanicError{
			Value: r,
			Stack: debug.Stack(),
		})
	}
}
