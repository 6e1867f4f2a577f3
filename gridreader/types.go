package gridreader

import (
	"errors"

	"github.com/katalvlaran/glyphlab/trigram"
)

// Sentinel errors for gridreader operations.
var (
	// ErrMessageCount indicates an unexpected number of messages.
	ErrMessageCount = errors.New("gridreader: unexpected message count")
	// ErrLineShape indicates a row that breaks the fixed-width layout.
	ErrLineShape = errors.New("gridreader: row does not fit the grid shape")
	// ErrRowWidth indicates a non-positive row width.
	ErrRowWidth = errors.New("gridreader: row width must be at least 1")
)

const (
	// DefaultMessageCount is the number of messages in the reference corpus.
	DefaultMessageCount = 9
	// DefaultRowWidth is the number of trigrams per full row in the reference corpus.
	DefaultRowWidth = 26
)

// Options contains the expected corpus shape.
type Options struct {
	// MessageCount is the expected number of messages; 0 disables the check.
	MessageCount int
	// RowWidth is the number of trigrams in every full row.
	RowWidth int
}

// DefaultOptions returns Options{MessageCount: 9, RowWidth: 26}.
func DefaultOptions() Options {
	return Options{
		MessageCount: DefaultMessageCount,
		RowWidth:     DefaultRowWidth,
	}
}

// Reader holds one grid per message. It is immutable once built.
type Reader struct {
	width int
	grids [][]trigram.Sequence // grids[msg][row]
}
