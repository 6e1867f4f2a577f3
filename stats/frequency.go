package stats

import "fmt"

// Frequencies counts every distinct symbol of xs.
func Frequencies[T comparable](xs []T) map[T]int {
	out := make(map[T]int)
	for _, x := range xs {
		out[x]++
	}

	return out
}

// FrequenciesIn counts the symbols of xs against a fixed alphabet.
// Every alphabet symbol is present in the result, with count 0 if unseen.
// Returns ErrOutOfAlphabet (wrapped with the offending position) if xs holds
// a symbol that the alphabet does not.
func FrequenciesIn[T comparable](xs, alphabet []T) (map[T]int, error) {
	out := make(map[T]int, len(alphabet))
	for _, a := range alphabet {
		out[a] = 0
	}
	for i, x := range xs {
		if _, ok := out[x]; !ok {
			return nil, fmt.Errorf("symbol %v at %d: %w", x, i, ErrOutOfAlphabet)
		}
		out[x]++
	}

	return out, nil
}
