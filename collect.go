package parset

import "context"

// GroupBy calls key for each element produced by it, and returns a multimap that associates
// each element with its key. Elements are grouped concurrently if it is a ParallelSet.
// Equal elements are not merged: if it produces the same element more than once, for example
// after a Collect stage, the multimap holds one association for each of them.
// If the operation is canceled, it returns nil and the cause of the cancelation.
func GroupBy[T any, K comparable](ctx context.Context, it Iterable[T], key MapperFunc[T, K]) (*Multimap[K, T], error) {
	result := NewMultimap[K, T]()

	err := it.ForEach(ctx, func(ctx context.Context, cancel context.CancelCauseFunc, elem T) {
		k := key(ctx, cancel, elem)

		if contextDone(ctx) {
			return
		}

		result.Put(k, elem)
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// GroupByEach calls keys for each element produced by it, and returns a multimap that associates
// each element with every key returned. A key returned more than once for the same element
// associates the element with it more than once, and equal elements produced more than once
// are each associated with every key.
// If the operation is canceled, it returns nil and the cause of the cancelation.
func GroupByEach[T any, K comparable](ctx context.Context, it Iterable[T], keys MapperFunc[T, []K]) (*Multimap[K, T], error) {
	result := NewMultimap[K, T]()

	err := it.ForEach(ctx, func(ctx context.Context, cancel context.CancelCauseFunc, elem T) {
		ks := keys(ctx, cancel, elem)

		if contextDone(ctx) {
			return
		}

		for _, k := range ks {
			result.Put(k, elem)
		}
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
