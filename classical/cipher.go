package classical

import (
	"fmt"
	"strings"
)

// Vigenere shifts every message symbol by the alphabet index of the matching
// key symbol, cycling the key. Indices wrap modulo the alphabet length.
func Vigenere(msg, alphabet, key string, decode bool) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	symbols := []rune(alphabet)
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if _, seen := index[r]; !seen {
			index[r] = i
		}
	}
	shifts := make([]int, 0, len(key))
	for _, r := range key {
		i, ok := index[r]
		if !ok {
			return "", fmt.Errorf("key symbol %q: %w", r, ErrOutOfAlphabet)
		}
		shifts = append(shifts, i)
	}

	n := len(symbols)
	var b strings.Builder
	b.Grow(len(msg))
	k := 0
	for pos, r := range []rune(msg) {
		from, ok := index[r]
		if !ok {
			return "", fmt.Errorf("message symbol %q at %d: %w", r, pos, ErrOutOfAlphabet)
		}
		to := from + shifts[k]
		if decode {
			to = from - shifts[k]
		}
		b.WriteRune(symbols[((to%n)+n)%n])
		k = (k + 1) % len(shifts)
	}

	return b.String(), nil
}

// ShiftBytes adds (or, when decode is set, subtracts) a repeating key to
// data with byte wrap-around.
func ShiftBytes(data, key []byte, decode bool) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(data))
	for i, v := range data {
		if decode {
			out[i] = v - key[i%len(key)]
		} else {
			out[i] = v + key[i%len(key)]
		}
	}

	return out, nil
}
