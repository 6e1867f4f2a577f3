package stats

import "errors"

var (
	// ErrTooShort indicates that a statistic would divide by zero:
	// fewer than two symbols for an IC, or an empty product.
	ErrTooShort = errors.New("stats: sequence too short for index of coincidence")

	// ErrKeyLength indicates a non-positive maximum key length.
	ErrKeyLength = errors.New("stats: max key length must be at least 1")

	// ErrOutOfAlphabet indicates a symbol that is not part of the given alphabet.
	ErrOutOfAlphabet = errors.New("stats: symbol out of alphabet")
)
