package trigram

import (
	"fmt"
	"slices"
)

// Alphabet maps the trigrams observed in a reference corpus to integer
// offsets. It is partial: trigrams never observed have no offset.
type Alphabet map[Trigram]int

// NewAlphabet assigns offset i to symbols[i]. A repeated symbol keeps its
// first offset.
func NewAlphabet(symbols []Trigram) Alphabet {
	out := make(Alphabet, len(symbols))
	for i, t := range symbols {
		if _, ok := out[t]; !ok {
			out[t] = i
		}
	}

	return out
}

// AlphabetOf builds an alphabet from the keys of a frequency table,
// numbered in ascending trigram order.
func AlphabetOf(freq map[Trigram]int) Alphabet {
	return NewAlphabet(SortedKeys(freq))
}

// Offset returns the offset of t.
// Returns ErrSymbolNotInAlphabet if t is not part of the alphabet.
func (a Alphabet) Offset(t Trigram) (int, error) {
	off, ok := a[t]
	if !ok {
		return 0, fmt.Errorf("%s: %w", t, ErrSymbolNotInAlphabet)
	}

	return off, nil
}

// Contains reports whether every trigram of s has an offset.
func (a Alphabet) Contains(s Sequence) bool {
	for _, t := range s {
		if _, ok := a[t]; !ok {
			return false
		}
	}

	return true
}

// SortedKeys returns the trigrams of freq in ascending order.
func SortedKeys(freq map[Trigram]int) []Trigram {
	keys := make([]Trigram, 0, len(freq))
	for t := range freq {
		keys = append(keys, t)
	}
	slices.SortFunc(keys, Trigram.Compare)

	return keys
}
