// Package stats computes frequency statistics over sequences drawn from an
// arbitrary finite alphabet.
//
// What:
//
//   - Frequencies / FrequenciesIn count symbol occurrences, optionally
//     restricted to an explicit alphabet.
//   - IndexOfCoincidence estimates the probability that two symbols picked
//     without replacement from one sequence are equal: Σ f·(f−1) / N·(N−1).
//   - PeriodicProfile averages the IC of k interleaved columns for every
//     candidate key length k in [1, maxKeyLength]; peaks hint at the period
//     of a repeating-key cipher (Friedman test).
//   - ProductIC generalises the IC to several sequences: the probability that
//     one symbol drawn from each sequence is the same symbol everywhere.
//
// All functions are generic over comparable symbol types, so the same code
// serves runes, bytes and trigram.Trigram values.
//
// Errors:
//
//   - ErrTooShort: a sequence (or a profile column) holds fewer than two symbols,
//     or a product IC is requested over an empty set or an empty member.
//   - ErrKeyLength: maxKeyLength < 1.
//   - ErrOutOfAlphabet: a symbol is absent from the explicit alphabet.
//
// Complexity:
//
//   - Frequencies, IndexOfCoincidence: O(N) time, O(A) memory.
//   - PeriodicProfile: O(N·K) time for K = maxKeyLength.
//   - ProductIC: O(Σ Nᵢ + U·S) for U distinct symbols over S sequences.
package stats
