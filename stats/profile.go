package stats

import "fmt"

// Columns splits xs into k interleaved columns: column j holds
// xs[j], xs[j+k], xs[j+2k], ...
// k < 1 yields nil.
func Columns[T any](xs []T, k int) [][]T {
	if k < 1 {
		return nil
	}
	cols := make([][]T, k)
	for j := range cols {
		cols[j] = make([]T, 0, len(xs)/k+1)
	}
	for i, x := range xs {
		cols[i%k] = append(cols[i%k], x)
	}

	return cols
}

// PeriodicProfile returns, for k = 1..maxKeyLength, the mean IC of the k
// interleaved columns of xs. Element k-1 of the result belongs to key length k.
//
// Errors:
//   - ErrKeyLength if maxKeyLength < 1.
//   - ErrTooShort if a column of some key length holds fewer than two symbols,
//     i.e. len(xs) < 2·maxKeyLength.
func PeriodicProfile[T comparable](xs []T, maxKeyLength int) ([]float64, error) {
	return profile(xs, maxKeyLength, IndexOfCoincidence[T])
}

// PeriodicProfileIn is PeriodicProfile with every column checked against alphabet.
func PeriodicProfileIn[T comparable](xs []T, maxKeyLength int, alphabet []T) ([]float64, error) {
	return profile(xs, maxKeyLength, func(col []T) (float64, error) {
		return IndexOfCoincidenceIn(col, alphabet)
	})
}

func profile[T comparable](xs []T, maxKeyLength int, ic func([]T) (float64, error)) ([]float64, error) {
	if maxKeyLength < 1 {
		return nil, ErrKeyLength
	}
	if len(xs) < 2*maxKeyLength {
		return nil, fmt.Errorf("length %d for key length %d: %w", len(xs), maxKeyLength, ErrTooShort)
	}

	out := make([]float64, maxKeyLength)
	for k := 1; k <= maxKeyLength; k++ {
		var sum float64
		for _, col := range Columns(xs, k) {
			v, err := ic(col)
			if err != nil {
				return nil, fmt.Errorf("key length %d: %w", k, err)
			}
			sum += v
		}
		out[k-1] = sum / float64(k)
	}

	return out, nil
}

// Mean returns the column-wise mean of rows. Rows shorter than the first one
// contribute nothing to the missing positions; an empty input yields nil.
func Mean(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, len(rows[0]))
	for i := range out {
		var sum float64
		var n int
		for _, r := range rows {
			if i < len(r) {
				sum += r[i]
				n++
			}
		}
		out[i] = sum / float64(n)
	}

	return out
}
