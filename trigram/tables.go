package trigram

import "fmt"

// diamondCentre is the start cell of every diamond walk.
const diamondCentre = 3

// DiamondMatrix is the 7×7 diamond board, indexed [x][y]. Cells outside the
// diamond hold 0; the 25 cells inside are numbered 1..25 row by row.
// Treat as read-only.
var DiamondMatrix = [7][7]int{
	{0, 0, 0, 1, 0, 0, 0},
	{0, 0, 2, 3, 4, 0, 0},
	{0, 5, 6, 7, 8, 9, 0},
	{10, 11, 12, 13, 14, 15, 16},
	{0, 17, 18, 19, 20, 21, 0},
	{0, 0, 22, 23, 24, 0, 0},
	{0, 0, 0, 25, 0, 0, 0},
}

// diamondSteps maps a digit to its (dx, dy) step on the board.
var diamondSteps = [MaxDigit + 1][2]int{
	{0, 0},  // 0: centred
	{0, -1}, // 1
	{1, 0},  // 2
	{0, 1},  // 3
	{-1, 0}, // 4
}

// PolybiusCube holds, in layer 0, the 5×5 Polybius square row*5+col; layer i
// is layer 0 with its rows shifted cyclically by i:
//
//	PolybiusCube[i][row][col] = PolybiusCube[0][(row+i)%5][col]
//
// Treat as read-only.
var PolybiusCube = buildPolybiusCube()

func buildPolybiusCube() [5][5][5]int {
	var cube [5][5][5]int
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			cube[0][row][col] = row*5 + col
		}
	}
	for layer := 1; layer < 5; layer++ {
		for row := 0; row < 5; row++ {
			cube[layer][row] = cube[0][(row+layer)%5]
		}
	}

	return cube
}

// DiamondValue walks the diamond board from its centre applying the steps of
// a, b and c in order (subtracting them when reverse is set) and returns the
// number of the final cell, in 1..25.
// Returns ErrOutOfDiamond if the walk ends on a cell outside the diamond.
func (t Trigram) DiamondValue(reverse bool) (int, error) {
	sign := 1
	if reverse {
		sign = -1
	}
	x, y := diamondCentre, diamondCentre
	for _, d := range t.Digits() {
		x += sign * diamondSteps[d][0]
		y += sign * diamondSteps[d][1]
	}
	if x < 0 || y < 0 || x >= len(DiamondMatrix) || y >= len(DiamondMatrix[x]) || DiamondMatrix[x][y] == 0 {
		return 0, fmt.Errorf("trigram %s reverse=%t ends at (%d,%d): %w", t, reverse, x, y, ErrOutOfDiamond)
	}

	return DiamondMatrix[x][y], nil
}

// PolybiusValue returns PolybiusCube[a][b][c], in 0..24.
func (t Trigram) PolybiusValue() int {
	return PolybiusCube[t.a][t.b][t.c]
}
