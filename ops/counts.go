package ops

import "sort"

type ValueCount[T comparable] struct {
	Value T
	Count int
}

// ValueCounts tallies distinct values preserving first-seen order.
func ValueCounts[T comparable](arr []T) []ValueCount[T] {

	index := map[T]int{}
	out := []ValueCount[T]{}

	for _, v := range arr {
		if at, ok := index[v]; ok {
			out[at].Count++
			continue
		}
		index[v] = len(out)
		out = append(out, ValueCount[T]{Value: v, Count: 1})
	}

	return out
}

// SortByCount orders descending by count. The sort is stable so equal
// counts keep their first-seen order.
func SortByCount[T comparable](counts []ValueCount[T]) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}
