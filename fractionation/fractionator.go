package fractionation

import (
	"fmt"

	"github.com/katalvlaran/glyphlab/trigram"
)

// Fractionator holds a filled cube and its reverse index. It is read-only
// after construction and safe for concurrent use.
type Fractionator struct {
	layers, size int
	cube         [][][]rune // [layer][row][col]
	index        map[rune]Coord
}

// New builds the cube for alphabet.
// Returns ErrCubeShape, ErrAlphabetSize or ErrDuplicateSymbol when the
// alphabet cannot form a bijection onto the cube.
func New(layers, gridSize int, alphabet string, fill FillOrder) (*Fractionator, error) {
	if layers < 1 || gridSize < 1 {
		return nil, fmt.Errorf("layers=%d gridSize=%d: %w", layers, gridSize, ErrCubeShape)
	}
	symbols := []rune(alphabet)
	if len(symbols) != layers*gridSize*gridSize {
		return nil, fmt.Errorf("alphabet of size %d for %d×%d×%d cube: %w",
			len(symbols), layers, gridSize, gridSize, ErrAlphabetSize)
	}

	f := &Fractionator{
		layers: layers,
		size:   gridSize,
		cube:   make([][][]rune, layers),
		index:  make(map[rune]Coord, len(symbols)),
	}
	for l := range f.cube {
		f.cube[l] = make([][]rune, gridSize)
		for r := range f.cube[l] {
			f.cube[l][r] = make([]rune, gridSize)
		}
	}

	next := 0
	place := func(c Coord) error {
		sym := symbols[next]
		if prev, dup := f.index[sym]; dup {
			return fmt.Errorf("%q at %v and %v: %w", sym, prev, c, ErrDuplicateSymbol)
		}
		f.cube[c.Layer][c.Row][c.Col] = sym
		f.index[sym] = c
		next++
		return nil
	}

	switch fill {
	case RowMajorAcrossLayers:
		for row := 0; row < gridSize; row++ {
			for wide := 0; wide < gridSize*layers; wide++ {
				if err := place(Coord{Layer: wide / gridSize, Row: row, Col: wide % gridSize}); err != nil {
					return nil, err
				}
			}
		}
	default:
		for l := 0; l < layers; l++ {
			for row := 0; row < gridSize; row++ {
				for col := 0; col < gridSize; col++ {
					if err := place(Coord{Layer: l, Row: row, Col: col}); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if next != len(symbols) || len(f.index) != len(symbols) {
		return nil, fmt.Errorf("filled %d of %d cells: %w", len(f.index), len(symbols), ErrCubeShape)
	}

	return f, nil
}

// Layers returns the number of layers.
func (f *Fractionator) Layers() int { return f.layers }

// GridSize returns the side length of each layer.
func (f *Fractionator) GridSize() int { return f.size }

// Cube returns a deep copy of the cube, indexed [layer][row][col].
func (f *Fractionator) Cube() [][][]rune {
	out := make([][][]rune, len(f.cube))
	for l, layer := range f.cube {
		out[l] = make([][]rune, len(layer))
		for r, row := range layer {
			out[l][r] = append([]rune(nil), row...)
		}
	}

	return out
}

// Locate returns the cell holding r.
func (f *Fractionator) Locate(r rune) (Coord, error) {
	c, ok := f.index[r]
	if !ok {
		return Coord{}, fmt.Errorf("%q: %w", r, ErrSymbolNotInAlphabet)
	}

	return c, nil
}

// At returns the symbol stored at c.
func (f *Fractionator) At(c Coord) (rune, error) {
	if c.Layer < 0 || c.Layer >= f.layers || c.Row < 0 || c.Row >= f.size || c.Col < 0 || c.Col >= f.size {
		return 0, fmt.Errorf("%+v: %w", c, ErrCoordinateRange)
	}

	return f.cube[c.Layer][c.Row][c.Col], nil
}

// Encode fractionates msg in blocks of groupSize symbols.
func (f *Fractionator) Encode(msg string, groupSize int) (string, error) {
	coords, err := f.locateAll(msg)
	if err != nil {
		return "", err
	}

	return f.run(coords, groupSize, transpose)
}

// Decode reverses Encode for the same groupSize.
func (f *Fractionator) Decode(msg string, groupSize int) (string, error) {
	coords, err := f.locateAll(msg)
	if err != nil {
		return "", err
	}

	return f.run(coords, groupSize, untranspose)
}

// EncodeTrigrams is Encode with each trigram's digits (a,b,c) taken as its coordinates.
func (f *Fractionator) EncodeTrigrams(seq trigram.Sequence, groupSize int) (string, error) {
	return f.run(trigramCoords(seq), groupSize, transpose)
}

// DecodeTrigrams is Decode with each trigram's digits (a,b,c) taken as its coordinates.
func (f *Fractionator) DecodeTrigrams(seq trigram.Sequence, groupSize int) (string, error) {
	return f.run(trigramCoords(seq), groupSize, untranspose)
}

func (f *Fractionator) locateAll(msg string) ([]Coord, error) {
	runes := []rune(msg)
	out := make([]Coord, len(runes))
	for i, r := range runes {
		c, err := f.Locate(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}

func trigramCoords(seq trigram.Sequence) []Coord {
	out := make([]Coord, len(seq))
	for i, t := range seq {
		out[i] = Coord{Layer: int(t.A()), Row: int(t.B()), Col: int(t.C())}
	}

	return out
}

// run validates the group size, regroups coords block by block and maps the
// result through the cube. Nothing is returned unless every cell resolves.
func (f *Fractionator) run(coords []Coord, groupSize int, regroup func([]Coord) []Coord) (string, error) {
	n := len(coords)
	if groupSize < 1 || groupSize > n || n%groupSize != 0 {
		return "", fmt.Errorf("message of length %d with group size %d: %w", n, groupSize, ErrGroupSize)
	}
	out := make([]rune, 0, n)
	for start := 0; start < n; start += groupSize {
		for _, c := range regroup(coords[start : start+groupSize]) {
			r, err := f.At(c)
			if err != nil {
				return "", err
			}
			out = append(out, r)
		}
	}

	return string(out), nil
}

// transpose writes all layers, then rows, then columns of block and reads the
// stream back as triples.
func transpose(block []Coord) []Coord {
	g := len(block)
	stream := make([]int, 0, 3*g)
	for _, c := range block {
		stream = append(stream, c.Layer)
	}
	for _, c := range block {
		stream = append(stream, c.Row)
	}
	for _, c := range block {
		stream = append(stream, c.Col)
	}
	out := make([]Coord, g)
	for i := range out {
		out[i] = Coord{Layer: stream[3*i], Row: stream[3*i+1], Col: stream[3*i+2]}
	}

	return out
}

// untranspose reads block as a flat triple stream and splits it into the
// layer, row and column streams of g digits each.
func untranspose(block []Coord) []Coord {
	g := len(block)
	stream := make([]int, 0, 3*g)
	for _, c := range block {
		stream = append(stream, c.Layer, c.Row, c.Col)
	}
	out := make([]Coord, g)
	for i := range out {
		out[i] = Coord{Layer: stream[i], Row: stream[g+i], Col: stream[2*g+i]}
	}

	return out
}
