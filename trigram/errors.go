package trigram

import (
	"errors"

	"github.com/katalvlaran/glyphlab/stats"
)

var (
	// ErrDigitOverflow indicates a digit outside [0,4].
	ErrDigitOverflow = errors.New("trigram: digit overflow (must be 0..4)")

	// ErrDigitPosition indicates a digit position other than A, B or C.
	ErrDigitPosition = errors.New("trigram: invalid digit position")

	// ErrOutOfDiamond indicates a diamond walk that ended outside the board.
	ErrOutOfDiamond = errors.New("trigram: diamond walk left the board")

	// ErrSymbolNotInAlphabet indicates a key trigram missing from an Alphabet.
	ErrSymbolNotInAlphabet = errors.New("trigram: symbol not in alphabet")

	// ErrEmptyKey indicates a cipher call with an empty key sequence.
	ErrEmptyKey = errors.New("trigram: key sequence is empty")

	// ErrPartialTrigram indicates raw digit input whose length is not a multiple of 3.
	ErrPartialTrigram = errors.New("trigram: raw digit count is not a multiple of 3")

	// ErrUnknownPermutation indicates an unparseable permutation name.
	ErrUnknownPermutation = errors.New("trigram: unknown permutation")

	// ErrTooShort is stats.ErrTooShort, surfaced for IC and profile calls.
	ErrTooShort = stats.ErrTooShort
)
