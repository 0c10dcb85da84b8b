package parset

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestFixedSize(t *testing.T) {
	is := is.New(t)

	is.Equal(FixedSize(3).Split(10), []Range{
		{Low: 0, High: 3},
		{Low: 3, High: 6},
		{Low: 6, High: 9},
		{Low: 9, High: 10},
	})

	is.Equal(FixedSize(3).Split(3), []Range{{Low: 0, High: 3}})
	is.Equal(len(FixedSize(3).Split(0)), 0)
	is.Equal(len(FixedSize(0).Split(4)), 4)
	is.Equal(FixedSize(math.MaxInt).Split(3), []Range{{Low: 0, High: 3}})
}

func TestEvenSplit(t *testing.T) {
	is := is.New(t)

	is.Equal(EvenSplit(3).Split(10), []Range{
		{Low: 0, High: 4},
		{Low: 4, High: 7},
		{Low: 7, High: 10},
	})

	is.Equal(EvenSplit(4).Split(2), []Range{
		{Low: 0, High: 1},
		{Low: 1, High: 2},
	})

	is.Equal(len(EvenSplit(4).Split(0)), 0)
	is.Equal(EvenSplit(-1).Split(5), []Range{{Low: 0, High: 5}})
}

func TestSplitPolicies_Cover(t *testing.T) {
	policies := map[string]SplitPolicy{
		"fixed-1": FixedSize(1),
		"fixed-7": FixedSize(7),
		"even-1":  EvenSplit(1),
		"even-6":  EvenSplit(6),
	}

	for name, policy := range policies {
		policy := policy

		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			for size := 0; size < 50; size++ {
				next := 0

				for _, r := range policy.Split(size) {
					is.Equal(r.Low, next)
					is.True(r.Len() > 0)

					next = r.High
				}

				is.Equal(next, size)
			}
		})
	}
}

func TestSplitFunc(t *testing.T) {
	is := is.New(t)

	calls := 0

	policy := SplitFunc(func(size int) []Range {
		calls++
		return []Range{{Low: 0, High: size}}
	})

	is.Equal(policy.Split(5), []Range{{Low: 0, High: 5}})
	is.Equal(calls, 1)
}
