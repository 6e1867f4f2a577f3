// Package fractionation implements a generalised Trifid cipher: symbols are
// split into three coordinates, the coordinate streams are transposed in
// blocks, and the transposed digits are reassembled into new symbols.
//
// 🚀 How it works
//
//	A cube of layers × gridSize × gridSize cells holds every alphabet symbol
//	exactly once. Encoding a block of g symbols:
//	  1. look up (layer,row,col) for each symbol,
//	  2. write all g layers, then all g rows, then all g columns,
//	  3. read that stream back three digits at a time as new (layer,row,col)
//	     triples and map them through the cube.
//	Decoding reverses step 2–3: the block's coordinates, read in order, are
//	split into the layer, row and column streams.
//
// Fill orders:
//
//   - LayerMajor:           fill layer 0 row by row, then layer 1, ...
//   - RowMajorAcrossLayers: fill row 0 across all layers side by side, then row 1, ...
//
// Trigram input:
//
//	EncodeTrigrams/DecodeTrigrams use a trigram's digits (a,b,c) directly as
//	(layer,row,col), so the cube must be at least 5×5×5 for arbitrary trigrams.
//
// Errors:
//
//   - ErrCubeShape:         non-positive layers or grid size.
//   - ErrAlphabetSize:      len(alphabet) != layers·gridSize².
//   - ErrDuplicateSymbol:   the alphabet repeats a symbol.
//   - ErrGroupSize:         group size < 1, > len(message), or not dividing it.
//   - ErrSymbolNotInAlphabet: a message symbol is not in the cube.
//   - ErrCoordinateRange:   a reassembled triple falls outside the cube
//     (possible when layers != gridSize).
//
// Complexity: O(n) time and memory for a message of n symbols.
package fractionation
