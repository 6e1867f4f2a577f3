package fractionation

import "errors"

// Sentinel errors for fractionation operations.
var (
	// ErrCubeShape indicates non-positive cube dimensions or an inconsistent fill.
	ErrCubeShape = errors.New("fractionation: invalid cube shape")
	// ErrAlphabetSize indicates an alphabet whose size is not layers·gridSize².
	ErrAlphabetSize = errors.New("fractionation: alphabet size does not match cube")
	// ErrDuplicateSymbol indicates an alphabet that repeats a symbol.
	ErrDuplicateSymbol = errors.New("fractionation: duplicate symbol in alphabet")
	// ErrGroupSize indicates a group size incompatible with the message length.
	ErrGroupSize = errors.New("fractionation: invalid group size")
	// ErrSymbolNotInAlphabet indicates a message symbol missing from the cube.
	ErrSymbolNotInAlphabet = errors.New("fractionation: symbol not in alphabet")
	// ErrCoordinateRange indicates a reassembled coordinate outside the cube.
	ErrCoordinateRange = errors.New("fractionation: coordinate outside cube")
)

// FillOrder selects how the alphabet is poured into the cube.
type FillOrder int

const (
	// LayerMajor fills one whole layer before moving to the next.
	LayerMajor FillOrder = iota
	// RowMajorAcrossLayers fills row r of every layer, left to right, before row r+1.
	RowMajorAcrossLayers
)

// Coord addresses one cube cell.
type Coord struct {
	Layer, Row, Col int
}
