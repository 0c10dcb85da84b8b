package parset

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

func Example() {
	// construct a pipeline from a set
	words := NewSet("a", "bb", "ccc", "dd", "eeee").AsParallel(WithBatchSize(2))

	// drop words longer than three letters
	// since we only need the elements themselves, we can use FuncPredicate
	words = words.Reject(FuncPredicate(func(elem string) bool {
		return len(elem) > 3
	}))

	// map words to upper case
	upper := Collect(words, FuncMapper(strings.ToUpper))

	// group the words by length
	groups, _ := GroupBy[string, int](context.Background(), upper, FuncMapper(func(elem string) int {
		return len(elem)
	}))

	keys := groups.Keys()
	slices.Sort(keys)

	for _, key := range keys {
		values := groups.Get(key)
		slices.Sort(values)

		fmt.Println(key, values)
	}
	// Output:
	// 1 [A]
	// 2 [BB DD]
	// 3 [CCC]
}

func ExampleFlatCollect() {
	ints := NewSet(1, 2, 3).AsParallel()

	_, err := FlatCollect(ints, FuncMapper(func(elem int) []int {
		return []int{elem, -elem}
	}))

	fmt.Println(err)
	// Output: parset: FlatCollect is not supported on a parallel unsorted set
}
