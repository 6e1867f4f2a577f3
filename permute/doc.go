// Package permute enumerates the orderings of a small slice lazily.
//
// What:
//
//   - All returns an iter.Seq over every ordering of the input, n! in total.
//   - The sequence is restartable: ranging over it twice yields the same orderings.
//   - Each yielded slice is freshly allocated and may be retained by the caller.
//
// Order:
//
//	The first position varies slowest. For {0,1,2} the orderings are
//	012, 021, 102, 120, 201, 210.
//
// Complexity:
//
//   - Time O(n!·n), Memory O(n) besides the yielded slices.
//
// The package exists for exploratory searches over digit mappings; n is
// expected to stay tiny (5 digits → 120 orderings).
package permute
