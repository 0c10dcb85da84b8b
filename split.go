package parset

// Range is the half-open interval [Low, High) of a source snapshot that makes up one batch.
type Range struct {
	Low  int
	High int
}

// Len returns the number of elements in r.
func (r Range) Len() int {
	return r.High - r.Low
}

// A SplitPolicy decides how a source snapshot of size elements is split into batches.
// The returned ranges must not overlap and must together cover [0, size).
type SplitPolicy interface {
	Split(size int) []Range
}

// SplitFunc is an adapter to use an ordinary function as a SplitPolicy.
type SplitFunc func(size int) []Range

// Split implements SplitPolicy.
func (f SplitFunc) Split(size int) []Range {
	return f(size)
}

// FixedSize returns a policy that splits a snapshot into batches of n elements.
// The last batch may be smaller. Values of n below 1 are treated as 1.
func FixedSize(n int) SplitPolicy {
	if n < 1 {
		n = 1
	}

	return SplitFunc(func(size int) []Range {
		ranges := make([]Range, 0, size/n+1)

		for low := 0; low < size; low += n {
			ranges = append(ranges, Range{Low: low, High: min(low+n, size)})
		}

		return ranges
	})
}

// EvenSplit returns a policy that splits a snapshot into at most parts batches whose sizes
// differ by at most one. Values of parts below 1 are treated as 1.
func EvenSplit(parts int) SplitPolicy {
	if parts < 1 {
		parts = 1
	}

	return SplitFunc(func(size int) []Range {
		n := min(parts, size)

		ranges := make([]Range, 0, n)

		low := 0

		for i := 0; i < n; i++ {
			high := low + size/n
			if i < size%n {
				high++
			}

			ranges = append(ranges, Range{Low: low, High: high})

			low = high
		}

		return ranges
	})
}
