// Package trigram models symbols of a closed 125-value alphabet and the
// sequences built from them.
//
// 🚀 What is a trigram?
//
//	A Trigram is an ordered triple of digits (a, b, c), each in [0,4].
//	It is simultaneously:
//	  • three independent base-5 digits, and
//	  • one element of the cyclic group ℤ/125ℤ via a·25 + b·5 + c.
//
//	Arithmetic (Add/Sub) happens in the group; structural operations
//	(swaps, rotations, digit inversion) happen on the digits.
//
// ✨ Key types:
//   - Trigram     — immutable-by-default value with pointer-receiver mutators.
//   - Permutation — the six digit orderings ABC, BAC, CBA, ACB, BCA, CAB.
//   - Sequence    — one message: an ordered []Trigram.
//   - Corpus      — several related messages: an ordered []Sequence.
//   - Alphabet    — a partial Trigram → offset table used by keyed ciphers.
//
// Aliasing:
//
//	Sequence elements are addressable, so s[i].Invert() mutates the slot in
//	place and every holder of s observes it. Transformations (Reorder, Cipher,
//	SplitHalf, ...) always build fresh slices and never touch their receiver.
//
// Derived values:
//
//	DiamondValue walks a 7×7 diamond board from its centre, one step per digit
//	(0 stays, 1 up, 2 right, 3 down, 4 left), yielding 1..25.
//	PolybiusValue looks the digits up in a 5×5×5 cube whose layer i is the
//	5×5 Polybius square with rows shifted by i, yielding 0..24.
//
// Concurrency:
//
//	Values and sequences carry no locks. Corpus.PeriodicProfiles fans out per
//	line with errgroup; each goroutine reads one line and writes one slot.
package trigram
