package parset

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ConsumerFunc consumes element elem.
// It may be called concurrently for different elements.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T)

// ForEach takes a snapshot of the source, splits it into batches, and calls each for every
// element produced by p. Batches are processed concurrently, up to the configured parallelism;
// the elements of a batch are processed in sequence. ForEach returns after all calls to each
// have returned.
// If a stage or each cancels the operation's context, no further elements are processed and
// ForEach returns the cause of the cancelation.
func (p *ParallelSet[T]) ForEach(ctx context.Context, each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	log := p.cfg.log.WithValues("pipeline", p.String(), "parallelism", p.cfg.parallelism)

	batches, err := splitBatches(p)
	if err != nil {
		log.Error(err, "split failed")
		return err
	}

	log = log.WithValues("batches", len(batches))
	log.V(1).Info("running batches")

	grp := errgroup.Group{}
	grp.SetLimit(p.cfg.parallelism)

	for _, b := range batches {
		if contextDone(ctx) {
			break
		}

		b := b

		grp.Go(func() error {
			defer recoverCancel(cancel)

			b(ctx, cancel, func(elem T) {
				each(ctx, cancel, elem)
			})

			return nil
		})
	}

	_ = grp.Wait()

	if err := operationErr(ctx); err != nil {
		log.Error(err, "batches aborted")
		return err
	}

	log.V(1).Info("batches done")

	return nil
}

// splitBatches returns the batches of p. A panic in the split policy is returned as a PanicError.
func splitBatches[T any](p *ParallelSet[T]) (batches []batch[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				Value: r,
				Stack: debug.Stack(),
			}
		}
	}()

	return p.split()
}

// Count returns the number of elements produced by it.
// If the operation is canceled, it returns 0 and the cause of the cancelation.
func Count[T any](ctx context.Context, it Iterable[T]) (int, error) {
	count := atomic.Int64{}

	err := it.ForEach(ctx, func(_ context.Context, _ context.CancelCauseFunc, _ T) {
		count.Add(1)
	})

	if err != nil {
		return 0, err
	}

	return int(count.Load()), nil
}

// AnySatisfy returns true as soon as pred returns true for an element produced by it.
// If an element matches, it cancels the operation's context using ErrShortCircuit.
// If the operation is canceled otherwise, it returns false and the cause of the cancelation.
func AnySatisfy[T any](ctx context.Context, it Iterable[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := atomic.Bool{}

	err := it.ForEach(ctx, func(ctx context.Context, cancel context.CancelCauseFunc, elem T) {
		if !pred(ctx, cancel, elem) {
			return
		}

		anyMatch.Store(true)

		cancel(ErrShortCircuit)
	})

	if err != nil {
		return false, err
	}

	return anyMatch.Load(), nil
}

// AllSatisfy returns true if pred returns true for all elements produced by it.
// If any element does not match, it cancels the operation's context using ErrShortCircuit.
// If the operation is canceled otherwise, it returns false and the cause of the cancelation.
func AllSatisfy[T any](ctx context.Context, it Iterable[T], pred PredicateFunc[T]) (bool, error) {
	noneMatch := atomic.Bool{}

	err := it.ForEach(ctx, func(ctx context.Context, cancel context.CancelCauseFunc, elem T) {
		if pred(ctx, cancel, elem) {
			return
		}

		noneMatch.Store(true)

		cancel(ErrShortCircuit)
	})

	if err != nil {
		return false, err
	}

	return !noneMatch.Load(), nil
}

// ToSlice returns the elements produced by it, in undefined order.
// If the operation is canceled, it returns nil and the cause of the cancelation.
func ToSlice[T any](ctx context.Context, it Iterable[T]) ([]T, error) {
	mu := sync.Mutex{}
	result := []T{}

	err := it.ForEach(ctx, func(_ context.Context, _ context.CancelCauseFunc, elem T) {
		mu.Lock()
		defer mu.Unlock()

		result = append(result, elem)
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// ToSet returns a new set containing the elements produced by it. Equal elements are stored once.
// If the operation is canceled, it returns nil and the cause of the cancelation.
func ToSet[T comparable](ctx context.Context, it Iterable[T]) (*Set[T], error) {
	mu := sync.Mutex{}
	result := NewSet[T]()

	err := it.ForEach(ctx, func(_ context.Context, _ context.CancelCauseFunc, elem T) {
		mu.Lock()
		defer mu.Unlock()

		result.Add(elem)
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
