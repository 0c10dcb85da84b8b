package parset

import (
	"context"

	"golang.org/x/exp/maps"
)

// Set is a collection of elements that are unique by value equality.
// Iteration order is undefined.
// A Set is not safe for concurrent use, and must not be modified while a terminal operation
// of a pipeline built from it is running.
type Set[T comparable] struct {
	elems map[T]struct{}
}

var _ Iterable[int] = (*Set[int])(nil)

// NewSet returns a set containing elems. Duplicate elements are stored once.
func NewSet[T comparable](elems ...T) *Set[T] {
	s := &Set[T]{
		elems: make(map[T]struct{}, len(elems)),
	}

	for _, elem := range elems {
		s.elems[elem] = struct{}{}
	}

	return s
}

// Add adds elem to s. It returns false if elem was already in s.
func (s *Set[T]) Add(elem T) bool {
	if _, ok := s.elems[elem]; ok {
		return false
	}

	s.elems[elem] = struct{}{}

	return true
}

// Contains returns true if elem is in s.
func (s *Set[T]) Contains(elem T) bool {
	_, ok := s.elems[elem]
	return ok
}

// Len returns the number of elements in s.
func (s *Set[T]) Len() int {
	return len(s.elems)
}

// Elements returns a snapshot of the elements in s, in undefined order.
func (s *Set[T]) Elements() []T {
	return maps.Keys(s.elems)
}

// ForEach calls each for each element in s, sequentially, on the calling goroutine.
// If each cancels the operation's context, it returns the cause of the cancelation.
func (s *Set[T]) ForEach(ctx context.Context, each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	func() {
		defer recoverCancel(cancel)

		for elem := range s.elems {
			if contextDone(ctx) {
				return
			}

			each(ctx, cancel, elem)
		}
	}()

	return operationErr(ctx)
}

// AsParallel returns a pipeline over the elements of s.
// The elements are not read until a terminal operation is called on the pipeline.
func (s *Set[T]) AsParallel(opts ...Option) *ParallelSet[T] {
	cfg := newConfig(opts...)

	return &ParallelSet[T]{
		cfg:  cfg,
		kind: stageSource,
		split: func() ([]batch[T], error) {
			elems := s.Elements()

			ranges := cfg.split.Split(len(elems))

			batches := make([]batch[T], len(ranges))
			for i, r := range ranges {
				if r.Low < 0 || r.Low > r.High || r.High > len(elems) {
					return nil, &InvalidRangeError{Range: r, Size: len(elems)}
				}

				batches[i] = sliceBatch(elems[r.Low:r.High])
			}

			return batches, nil
		},
	}
}

// sliceBatch returns a batch that produces elems, stopping early once ctx is done.
func sliceBatch[T any](elems []T) batch[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc, each func(elem T)) {
		for _, elem := range elems {
			if contextDone(ctx) {
				return
			}

			each(elem)
		}
	}
}
