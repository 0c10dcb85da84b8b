package parset

import "sync"

// Supplier returns a value each time it is called.
type Supplier[T any] func() T

// Result is the outcome of a supplier that can fail: either a value, or an error.
type Result[T any] struct {
	Value T
	Err   error
}

// Get returns the value and error of r.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// OK returns true if r holds a value.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

var (
	boolSuppliersOnce sync.Once
	trueSupplier      Supplier[bool]
	falseSupplier     Supplier[bool]
)

func initBoolSuppliers() {
	trueSupplier = func() bool { return true }
	falseSupplier = func() bool { return false }
}

// True returns a supplier that always returns true.
func True() Supplier[bool] {
	boolSuppliersOnce.Do(initBoolSuppliers)
	return trueSupplier
}

// False returns a supplier that always returns false.
func False() Supplier[bool] {
	boolSuppliersOnce.Do(initBoolSuppliers)
	return falseSupplier
}

// Zero returns a supplier that returns the zero value of T.
func Zero[T any]() Supplier[T] {
	return func() T {
		var zero T
		return zero
	}
}

// Nil returns a supplier that returns a nil pointer to T.
func Nil[T any]() Supplier[*T] {
	return func() *T {
		return nil
	}
}

// Value returns a supplier that always returns v.
func Value[T any](v T) Supplier[T] {
	return func() T {
		return v
	}
}

// NewSlice returns a supplier that returns a new, empty slice on each call.
func NewSlice[T any]() Supplier[[]T] {
	return func() []T {
		return []T{}
	}
}

// NewMap returns a supplier that returns a new, empty map on each call.
func NewMap[K comparable, V any]() Supplier[map[K]V] {
	return func() map[K]V {
		return map[K]V{}
	}
}

// NewSetSupplier returns a supplier that returns a new, empty set on each call.
func NewSetSupplier[T comparable]() Supplier[*Set[T]] {
	return func() *Set[T] {
		return NewSet[T]()
	}
}

// NewMultimapSupplier returns a supplier that returns a new, empty multimap on each call.
func NewMultimapSupplier[K comparable, V any]() Supplier[*Multimap[K, V]] {
	return NewMultimap[K, V]
}

// Throwing returns a supplier that calls fn and returns its outcome as a Result.
func Throwing[T any](fn func() (T, error)) Supplier[Result[T]] {
	return func() Result[T] {
		value, err := fn()
		return Result[T]{Value: value, Err: err}
	}
}
