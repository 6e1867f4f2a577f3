package classical

import "errors"

var (
	// ErrOutOfAlphabet indicates a message, key or value outside the alphabet.
	ErrOutOfAlphabet = errors.New("classical: symbol out of alphabet")

	// ErrEmptyKey indicates a zero-length key.
	ErrEmptyKey = errors.New("classical: empty key")

	// ErrBinaryLength indicates a binary string whose length is not a multiple of 8.
	ErrBinaryLength = errors.New("classical: binary string length not a multiple of 8")

	// ErrBinaryDigit indicates a character other than '0' or '1' in a binary string.
	ErrBinaryDigit = errors.New("classical: invalid binary digit")
)
