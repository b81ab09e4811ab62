// Package sortutil provides a stable comparator-driven merge sort used by
// the HTTP layer to order item snapshots by a user-selected key.
package sortutil

// Sorted returns a new slice with the elements of items in non-decreasing
// order per cmp (negative/zero/positive three-way result). The input slice
// is never mutated and elements comparing equal keep their relative order.
//
// A nil comparator is a programming error and panics.
func Sorted[T any](items []T, cmp func(a, b T) int) []T {
	if cmp == nil {
		panic("sortutil: nil comparator")
	}
	return mergeSort(items, cmp)
}

func mergeSort[T any](items []T, cmp func(a, b T) int) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	mid := len(items) / 2
	left := mergeSort(items[:mid], cmp)
	right := mergeSort(items[mid:], cmp)

	return merge(left, right, cmp)
}

// merge takes two sorted halves and interleaves them; on ties the left
// element wins, which is what makes the sort stable.
func merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}

	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}
