package permute

import "iter"

// All returns a lazy sequence over every ordering of items.
// An empty input yields exactly one empty ordering.
// The input slice is copied once; later changes to it do not affect the sequence.
func All[T any](items []T) iter.Seq[[]T] {
	src := make([]T, len(items))
	copy(src, items)

	return func(yield func([]T) bool) {
		used := make([]bool, len(src))
		prefix := make([]T, 0, len(src))
		walk(src, used, prefix, yield)
	}
}

// walk extends prefix with every unused element in index order.
// It reports false once yield asked to stop.
func walk[T any](src []T, used []bool, prefix []T, yield func([]T) bool) bool {
	if len(prefix) == len(src) {
		out := make([]T, len(prefix))
		copy(out, prefix)
		return yield(out)
	}
	for i := range src {
		if used[i] {
			continue
		}
		used[i] = true
		if !walk(src, used, append(prefix, src[i]), yield) {
			return false
		}
		used[i] = false
	}

	return true
}

// Count returns n! for n ≥ 0 and 0 for negative n.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}

	return r
}
