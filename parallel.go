package parset

import "context"

// Iterable is implemented by sources and pipelines that can call a function for each of their
// elements.
type Iterable[T any] interface {
	// ForEach calls each for each element, possibly concurrently, and returns after all calls
	// have returned. If each cancels the operation's context, it returns the cause of the
	// cancelation.
	ForEach(ctx context.Context, each ConsumerFunc[T]) error
}

// A batch calls each for every element of one part of a source that survives a pipeline's
// stages, in sequence, on the calling goroutine.
type batch[T any] func(ctx context.Context, cancel context.CancelCauseFunc, each func(elem T))

type stageKind string

const (
	stageSource  stageKind = "set"
	stageSelect  stageKind = "select"
	stageCollect stageKind = "collect"
)

// ParallelSet is one stage of a lazy pipeline over a Set.
// A ParallelSet is never modified after it has been created; operations return a new
// ParallelSet that wraps the previous one. It is safe to use the same ParallelSet to build
// several pipelines, and to run terminal operations on it concurrently.
type ParallelSet[T any] struct {
	cfg      *config
	kind     stageKind
	upstream string

	// split returns the batches of a fresh snapshot of the source, with this stage and all
	// upstream stages applied.
	split func() ([]batch[T], error)
}

var _ Iterable[int] = (*ParallelSet[int])(nil)

// String describes the stages of p, starting with the source.
func (p *ParallelSet[T]) String() string {
	if p.upstream == "" {
		return string(p.kind)
	}

	return p.upstream + " -> " + string(p.kind)
}

// AsUnique returns p. The elements of a ParallelSet are already unique.
func (p *ParallelSet[T]) AsUnique() *ParallelSet[T] {
	return p
}

// stage returns a new ParallelSet of kind that wraps every batch of p using wrap.
func stage[T any, U any](p *ParallelSet[T], kind stageKind, wrap func(batch[T]) batch[U]) *ParallelSet[U] {
	return &ParallelSet[U]{
		cfg:      p.cfg,
		kind:     kind,
		upstream: p.String(),
		split: func() ([]batch[U], error) {
			up, err := p.split()
			if err != nil {
				return nil, err
			}

			batches := make([]batch[U], len(up))
			for i, b := range up {
				batches[i] = wrap(b)
			}

			return batches, nil
		},
	}
}
