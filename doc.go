// Package parset provides lazy, composable, parallel operations on sets of unique elements.
//
// A pipeline starts from a Set, which holds elements that are unique by value equality and
// have no defined iteration order. Set.AsParallel returns the root ParallelSet of a pipeline.
//
// Elements may then be filtered and mapped using Select, Reject, Collect, CollectIf, and their
// parameter-binding variants. These operations only describe a stage: each returns a new
// ParallelSet wrapping the previous one, and none of them reads the source. SelectInstancesOf
// and FlatCollect are not supported on this pipeline shape and fail immediately with an
// UnsupportedOperationError.
//
// Terminal operations, such as ForEach, GroupBy, GroupByEach, Count, or ToSlice, split a
// snapshot of the source into batches and run the whole chain of stages for each element on a
// pool of goroutines. They block until all batches are done. Grouping writes into a Multimap
// that serializes every insertion, so no association is lost regardless of how many batches
// run at the same time.
//
// Functions passed to operations receive a context.CancelCauseFunc. Calling it with an error
// aborts the terminal operation, which then returns that error. A panic in a function aborts
// the operation with a PanicError.
package parset
