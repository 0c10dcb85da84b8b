package parset

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestContextDone(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	is.True(!contextDone(ctx))

	cancel()
	is.True(contextDone(ctx))
}

func TestOperationErr(t *testing.T) {
	is := is.New(t)

	errFail := errors.New("fail")

	ctx, cancel := context.WithCancelCause(context.Background())
	is.NoErr(operationErr(ctx))

	cancel(ErrShortCircuit)
	is.NoErr(operationErr(ctx))

	ctx, cancel = context.WithCancelCause(context.Background())
	cancel(errFail)
	is.True(errors.Is(operationErr(ctx), errFail))
}

func TestRecoverCancel(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	func() {
		defer recoverCancel(cancel)

		panic("boom")
	}()

	var panicErr *PanicError

	is.True(errors.As(context.Cause(ctx), &panicErr))
	is.Equal(panicErr.Value, "boom")
}
