package stats

// IndexOfCoincidence returns Σ f·(f−1) / N·(N−1) over the symbol counts of xs.
// Returns ErrTooShort if len(xs) < 2.
func IndexOfCoincidence[T comparable](xs []T) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrTooShort
	}

	return icFromCounts(Frequencies(xs), len(xs)), nil
}

// IndexOfCoincidenceIn is IndexOfCoincidence restricted to an explicit alphabet.
func IndexOfCoincidenceIn[T comparable](xs, alphabet []T) (float64, error) {
	freq, err := FrequenciesIn(xs, alphabet)
	if err != nil {
		return 0, err
	}
	if len(xs) < 2 {
		return 0, ErrTooShort
	}

	return icFromCounts(freq, len(xs)), nil
}

// icFromCounts is the shared kernel; n must be ≥ 2.
func icFromCounts[T comparable](freq map[T]int, n int) float64 {
	var sum int
	for _, f := range freq {
		sum += f * (f - 1)
	}

	return float64(sum) / float64(n*(n-1))
}

// ProductIC returns the probability that one symbol drawn independently from
// each sequence is the same symbol in all of them:
//
//	Σ_s Π_i f_i(s) / Π_i N_i
//
// where s ranges over the union of symbols and f_i(s) is 0 if sequence i
// lacks s. A single sequence yields Σ f / N = 1.
// Returns ErrTooShort for an empty set or any empty member.
func ProductIC[T comparable](seqs [][]T) (float64, error) {
	if len(seqs) == 0 {
		return 0, ErrTooShort
	}
	counts := make([]map[T]int, len(seqs))
	denom := 1.0
	for i, s := range seqs {
		if len(s) == 0 {
			return 0, ErrTooShort
		}
		counts[i] = Frequencies(s)
		denom *= float64(len(s))
	}

	// Union of symbols in first-seen order keeps the float sum deterministic.
	var union []T
	seen := make(map[T]bool)
	for _, s := range seqs {
		for _, x := range s {
			if !seen[x] {
				seen[x] = true
				union = append(union, x)
			}
		}
	}

	var sum float64
	for _, sym := range union {
		partial := float64(counts[0][sym])
		for i := 1; i < len(counts) && partial != 0; i++ {
			partial *= float64(counts[i][sym])
		}
		sum += partial
	}

	return sum / denom, nil
}
