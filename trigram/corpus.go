package trigram

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/glyphlab/stats"
)

// Corpus is an ordered set of related messages. Lines may differ in length.
type Corpus []Sequence

// Len returns the number of lines.
func (c Corpus) Len() int { return len(c) }

// Clone deep-copies every line.
func (c Corpus) Clone() Corpus {
	out := make(Corpus, len(c))
	for i, s := range c {
		out[i] = s.Clone()
	}

	return out
}

// Frequencies returns the summed trigram counts of all lines.
func (c Corpus) Frequencies() map[Trigram]int {
	out := make(map[Trigram]int)
	for _, s := range c {
		for t, n := range s.Frequencies() {
			out[t] += n
		}
	}

	return out
}

// Alphabet numbers every trigram observed in the corpus in ascending order.
func (c Corpus) Alphabet() Alphabet {
	return AlphabetOf(c.Frequencies())
}

// IndexOfCoincidence returns the product-form IC across lines: for each
// trigram, the product of its count in every line (0 if any line lacks it),
// summed over trigrams and divided by the product of line lengths.
// Returns ErrTooShort for an empty corpus or an empty line.
func (c Corpus) IndexOfCoincidence() (float64, error) {
	seqs := make([][]Trigram, len(c))
	for i, s := range c {
		seqs[i] = s
	}

	return stats.ProductIC(seqs)
}

// Reorder applies Sequence.Reorder to every line.
func (c Corpus) Reorder(odd, even Permutation) Corpus {
	out := make(Corpus, len(c))
	for i, s := range c {
		out[i] = s.Reorder(odd, even)
	}

	return out
}

// SplitHalf applies Sequence.SplitHalf to every line.
func (c Corpus) SplitHalf(takeOdd bool) Corpus {
	out := make(Corpus, len(c))
	for i, s := range c {
		out[i] = s.SplitHalf(takeOdd)
	}

	return out
}

// Odd returns SplitHalf(true).
func (c Corpus) Odd() Corpus { return c.SplitHalf(true) }

// Even returns SplitHalf(false).
func (c Corpus) Even() Corpus { return c.SplitHalf(false) }

// InvertAlternate applies Sequence.InvertAlternate to every line in place.
func (c Corpus) InvertAlternate(startWithFirst bool) {
	for _, s := range c {
		s.InvertAlternate(startWithFirst)
	}
}

// PeriodicProfiles computes the periodic profile of every line, running at
// most workers lines concurrently (workers < 1 means one per line).
// Row i of the result belongs to line i regardless of scheduling. The first
// failing line cancels the rest and its error is returned with the line index.
func (c Corpus) PeriodicProfiles(ctx context.Context, maxKeyLength, workers int) ([][]float64, error) {
	out := make([][]float64, len(c))
	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range c {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := s.PeriodicProfile(maxKeyLength)
			if err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
			out[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// MeanPeriodicProfile averages PeriodicProfiles across lines.
func (c Corpus) MeanPeriodicProfile(ctx context.Context, maxKeyLength, workers int) ([]float64, error) {
	rows, err := c.PeriodicProfiles(ctx, maxKeyLength, workers)
	if err != nil {
		return nil, err
	}

	return stats.Mean(rows), nil
}
