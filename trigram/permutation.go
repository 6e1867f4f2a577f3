package trigram

import (
	"fmt"
	"strings"
)

// Permutation names one of the six orderings of the digits a, b, c.
// The name spells the source digit placed at each position.
type Permutation uint8

const (
	// ABC keeps the digits as they are.
	ABC Permutation = iota
	// BAC swaps a and b.
	BAC
	// CBA swaps a and c.
	CBA
	// ACB swaps b and c.
	ACB
	// BCA rotates forward: abc → bca.
	BCA
	// CAB rotates backward: abc → cab.
	CAB
)

var permutationNames = [...]string{"ABC", "BAC", "CBA", "ACB", "BCA", "CAB"}

// Permutations returns all six permutations in declaration order.
func Permutations() []Permutation {
	return []Permutation{ABC, BAC, CBA, ACB, BCA, CAB}
}

// String returns the three-letter name, or "Permutation(n)" for unknown values.
func (p Permutation) String() string {
	if int(p) < len(permutationNames) {
		return permutationNames[p]
	}

	return fmt.Sprintf("Permutation(%d)", uint8(p))
}

// Inverse returns the permutation that undoes p.
func (p Permutation) Inverse() Permutation {
	switch p {
	case BCA:
		return CAB
	case CAB:
		return BCA
	}

	return p
}

// ParsePermutation parses a case-insensitive three-letter name such as "bca".
func ParsePermutation(s string) (Permutation, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range permutationNames {
		if name == up {
			return Permutation(i), nil
		}
	}

	return ABC, fmt.Errorf("%q: %w", s, ErrUnknownPermutation)
}
