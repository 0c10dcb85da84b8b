package parset

import "context"

// PredicateFunc returns true if elem matches a predicate.
// It may be called more than once for the same element, and must return the same result each time.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T) bool

// Predicate2Func returns true if elem matches a predicate that takes an additional parameter.
type Predicate2Func[T any, P any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, param P) bool

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T) U

// Mapper2Func maps element elem to type U, using an additional parameter.
type Mapper2Func[T any, P any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, param P) U

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred func(elem T) bool) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T) bool {
		return pred(elem)
	}
}

// ErrPredicate returns a predicate that calls pred for each element.
// If pred returns an error, the operation is canceled with that error.
func ErrPredicate[T any](pred func(elem T) (bool, error)) PredicateFunc[T] {
	return func(_ context.Context, cancel context.CancelCauseFunc, elem T) bool {
		ok, err := pred(elem)
		if err != nil {
			cancel(err)
			return false
		}

		return ok
	}
}

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp func(elem T) U) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T) U {
		return mapp(elem)
	}
}

// ErrMapper returns a mapper that calls mapp for each element.
// If mapp returns an error, the operation is canceled with that error.
func ErrMapper[T any, U any](mapp func(elem T) (U, error)) MapperFunc[T, U] {
	return func(_ context.Context, cancel context.CancelCauseFunc, elem T) U {
		result, err := mapp(elem)
		if err != nil {
			cancel(err)
		}

		return result
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T) T {
		return elem
	}
}

// Not returns a predicate that negates pred.
func Not[T any](pred PredicateFunc[T]) PredicateFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elem T) bool {
		return !pred(ctx, cancel, elem)
	}
}

// BindPredicate returns a predicate that calls pred with param.
func BindPredicate[T any, P any](pred Predicate2Func[T, P], param P) PredicateFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elem T) bool {
		return pred(ctx, cancel, elem, param)
	}
}

// BindMapper returns a mapper that calls mapp with param.
func BindMapper[T any, P any, U any](mapp Mapper2Func[T, P, U], param P) MapperFunc[T, U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elem T) U {
		return mapp(ctx, cancel, elem, param)
	}
}

// Select returns a pipeline that only produces the elements produced by p for which pred
// returns true.
func (p *ParallelSet[T]) Select(pred PredicateFunc[T]) *ParallelSet[T] {
	return stage(p, stageSelect, func(up batch[T]) batch[T] {
		return func(ctx context.Context, cancel context.CancelCauseFunc, each func(elem T)) {
			up(ctx, cancel, func(elem T) {
				if !pred(ctx, cancel, elem) {
					return
				}

				if contextDone(ctx) {
					return
				}

				each(elem)
			})
		}
	})
}

// Reject returns a pipeline that only produces the elements produced by p for which pred
// returns false.
func (p *ParallelSet[T]) Reject(pred PredicateFunc[T]) *ParallelSet[T] {
	return p.Select(Not(pred))
}

// SelectWith returns a pipeline that only produces the elements produced by p for which pred,
// called with param, returns true.
func SelectWith[T any, P any](p *ParallelSet[T], pred Predicate2Func[T, P], param P) *ParallelSet[T] {
	return p.Select(BindPredicate(pred, param))
}

// RejectWith returns a pipeline that only produces the elements produced by p for which pred,
// called with param, returns false.
func RejectWith[T any, P any](p *ParallelSet[T], pred Predicate2Func[T, P], param P) *ParallelSet[T] {
	return p.Reject(BindPredicate(pred, param))
}

// Collect returns a pipeline that calls mapp for each element produced by p, mapping it to type U.
// Different elements may be mapped to equal values; the new pipeline produces each of them.
func Collect[T any, U any](p *ParallelSet[T], mapp MapperFunc[T, U]) *ParallelSet[U] {
	return stage(p, stageCollect, func(up batch[T]) batch[U] {
		return func(ctx context.Context, cancel context.CancelCauseFunc, each func(elem U)) {
			up(ctx, cancel, func(elem T) {
				outElem := mapp(ctx, cancel, elem)

				if contextDone(ctx) {
					return
				}

				each(outElem)
			})
		}
	})
}

// CollectWith returns a pipeline that calls mapp with param for each element produced by p,
// mapping it to type U.
func CollectWith[T any, P any, U any](p *ParallelSet[T], mapp Mapper2Func[T, P, U], param P) *ParallelSet[U] {
	return Collect(p, BindMapper(mapp, param))
}

// CollectIf returns a pipeline that maps the elements produced by p for which pred returns
// true to type U.
func CollectIf[T any, U any](p *ParallelSet[T], pred PredicateFunc[T], mapp MapperFunc[T, U]) *ParallelSet[U] {
	return Collect(p.Select(pred), mapp)
}

// SelectInstancesOf is not supported. It always returns an UnsupportedOperationError.
func SelectInstancesOf[T any, S any](_ *ParallelSet[T]) (*ParallelSet[S], error) {
	return nil, &UnsupportedOperationError{Op: "SelectInstancesOf"}
}

// FlatCollect is not supported. It always returns an UnsupportedOperationError.
func FlatCollect[T any, U any](_ *ParallelSet[T], _ MapperFunc[T, []U]) (*ParallelSet[U], error) {
	return nil, &UnsupportedOperationError{Op: "FlatCollect"}
}
