package trigram_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/glyphlab/trigram"
)

// randomCorpus builds a deterministic corpus of lines×n trigrams.
func randomCorpus(lines, n int) trigram.Corpus {
	r := rand.New(rand.NewSource(42))
	c := make(trigram.Corpus, lines)
	for i := range c {
		ns := make([]int, n)
		for j := range ns {
			ns[j] = r.Intn(trigram.Order)
		}
		c[i] = trigram.FromInts(ns)
	}
	return c
}

// BenchmarkSequence_PeriodicProfile measures a 35-key profile on 1000 trigrams.
func BenchmarkSequence_PeriodicProfile(b *testing.B) {
	s := randomCorpus(1, 1000)[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.PeriodicProfile(35)
	}
}

// BenchmarkCorpus_PeriodicProfiles measures the parallel per-line profile.
func BenchmarkCorpus_PeriodicProfiles(b *testing.B) {
	c := randomCorpus(9, 1000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.PeriodicProfiles(ctx, 35, 4)
	}
}

// BenchmarkCorpus_IndexOfCoincidence measures the product-form IC.
func BenchmarkCorpus_IndexOfCoincidence(b *testing.B) {
	c := randomCorpus(9, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.IndexOfCoincidence()
	}
}
