package trigram_test

import (
	"testing"

	"github.com/katalvlaran/glyphlab/trigram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(ns ...int) trigram.Sequence { return trigram.FromInts(ns) }

// TestFromRaw builds trigrams three digits at a time and rejects bad input.
func TestFromRaw(t *testing.T) {
	s, err := trigram.FromRaw([]uint8{2, 0, 0, 1, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, "200 114", s.String())

	_, err = trigram.FromRaw([]uint8{1, 2, 3, 4})
	assert.ErrorIs(t, err, trigram.ErrPartialTrigram)

	_, err = trigram.FromRaw([]uint8{1, 2, 3, 4, 5, 0})
	assert.ErrorIs(t, err, trigram.ErrDigitOverflow)

	empty, err := trigram.FromRaw(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestFromTextAndBytes covers the character and byte constructors.
func TestFromTextAndBytes(t *testing.T) {
	s := trigram.FromText("AB", 0)
	assert.Equal(t, []int{65, 66}, s.Ints())
	assert.Equal(t, "AB", s.Text(0))

	s = trigram.FromText("A", -65)
	assert.Equal(t, []int{0}, s.Ints())

	b := trigram.FromBytes([]byte{0, 130}, 0)
	assert.Equal(t, []int{0, 5}, b.Ints())
}

// TestSequence_IC checks the IC and its short-sequence domain error.
func TestSequence_IC(t *testing.T) {
	ic, err := seq(1, 1, 2, 2).IndexOfCoincidence()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/12.0, ic, 1e-12)

	_, err = seq(1).IndexOfCoincidence()
	assert.ErrorIs(t, err, trigram.ErrTooShort)

	freq := seq(1, 1, 2).Frequencies()
	assert.Equal(t, map[trigram.Trigram]int{trigram.FromInt(1): 2, trigram.FromInt(2): 1}, freq)
}

// TestSequence_PeriodicProfile detects a period of two.
func TestSequence_PeriodicProfile(t *testing.T) {
	s := seq(5, 9, 5, 9, 5, 9, 5, 9)
	prof, err := s.PeriodicProfile(3)
	require.NoError(t, err)
	require.Len(t, prof, 3)
	assert.InDelta(t, 1.0, prof[1], 1e-12)
	assert.Less(t, prof[0], prof[1])

	_, err = s.PeriodicProfile(5)
	assert.ErrorIs(t, err, trigram.ErrTooShort)
}

// TestSplitHalf checks the index-0-is-odd convention.
func TestSplitHalf(t *testing.T) {
	s := seq(0, 1, 2, 3, 4)
	assert.Equal(t, []int{0, 2, 4}, s.SplitHalf(true).Ints())
	assert.Equal(t, []int{1, 3}, s.SplitHalf(false).Ints())
	assert.Equal(t, s.Odd(), s.SplitHalf(true))
	assert.Equal(t, s.Even(), s.SplitHalf(false))
	assert.Empty(t, trigram.Sequence{}.Odd())
}

// TestReorder applies the "odd" permutation at index 0 and never mutates the input.
func TestReorder(t *testing.T) {
	s := trigram.Sequence{trigram.MustNew(1, 2, 3), trigram.MustNew(1, 2, 3), trigram.MustNew(0, 1, 4)}
	before := s.Clone()
	got := s.Reorder(trigram.BCA, trigram.CBA)
	assert.Equal(t, "231 321 140", got.String())
	assert.Equal(t, before, s)
}

// TestCipher_RoundTrip checks encode/decode with a repeating key.
func TestCipher_RoundTrip(t *testing.T) {
	s := seq(0, 1, 2, 50, 100, 124, 7)
	key := seq(3, 120)

	enc, err := s.Cipher(key, false)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 121, 5, 45, 103, 119, 10}, enc.Ints())

	dec, err := enc.Cipher(key, true)
	require.NoError(t, err)
	assert.Equal(t, s, dec)

	_, err = s.Cipher(nil, false)
	assert.ErrorIs(t, err, trigram.ErrEmptyKey)
}

// TestCipher_AllPairs round-trips every plaintext against several keys.
func TestCipher_AllPairs(t *testing.T) {
	s := make(trigram.Sequence, 0, trigram.Order)
	for i := 0; i < trigram.Order; i++ {
		s = append(s, trigram.FromInt(i))
	}
	for _, key := range []trigram.Sequence{seq(1), seq(124, 3, 77), s} {
		enc, err := s.Cipher(key, false)
		require.NoError(t, err)
		dec, err := enc.Cipher(key, true)
		require.NoError(t, err)
		assert.Equal(t, s, dec)
	}
}

// TestCipherWithAlphabet translates key symbols through a partial alphabet.
func TestCipherWithAlphabet(t *testing.T) {
	alpha := trigram.NewAlphabet([]trigram.Trigram{trigram.FromInt(40), trigram.FromInt(90)})
	s := seq(10, 20, 30)
	key := seq(90, 40)

	enc, err := s.CipherWithAlphabet(key, alpha, false)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 20, 31}, enc.Ints())

	dec, err := enc.CipherWithAlphabet(key, alpha, true)
	require.NoError(t, err)
	assert.Equal(t, s, dec)

	_, err = s.CipherWithAlphabet(seq(41), alpha, false)
	assert.ErrorIs(t, err, trigram.ErrSymbolNotInAlphabet)
	_, err = s.CipherWithAlphabet(nil, alpha, false)
	assert.ErrorIs(t, err, trigram.ErrEmptyKey)
}

// TestAlphabet covers construction and lookups.
func TestAlphabet(t *testing.T) {
	freq := map[trigram.Trigram]int{trigram.FromInt(9): 3, trigram.FromInt(2): 1, trigram.FromInt(50): 7}
	alpha := trigram.AlphabetOf(freq)
	off, err := alpha.Offset(trigram.FromInt(9))
	require.NoError(t, err)
	assert.Equal(t, 1, off)
	assert.True(t, alpha.Contains(seq(2, 50)))
	assert.False(t, alpha.Contains(seq(2, 51)))

	dup := trigram.NewAlphabet([]trigram.Trigram{trigram.FromInt(1), trigram.FromInt(1), trigram.FromInt(2)})
	assert.Equal(t, 0, dup[trigram.FromInt(1)])
	assert.Equal(t, 2, dup[trigram.FromInt(2)])
}

// TestAliasing verifies that in-place mutators act on the sequence slot.
func TestAliasing(t *testing.T) {
	s := trigram.Sequence{trigram.MustNew(1, 2, 0), trigram.MustNew(0, 0, 1)}
	alias := s
	s[0].Invert()
	assert.Equal(t, "340", alias[0].String())

	require.NoError(t, alias[1].InvertDigit(trigram.PosC))
	assert.Equal(t, "003", s[1].String())

	clone := s.Clone()
	clone[0].Permute(trigram.BAC)
	assert.Equal(t, "340", s[0].String(), "clone must not alias the original")
}

// TestInvertAlternate inverts every second trigram in place.
func TestInvertAlternate(t *testing.T) {
	s := trigram.Sequence{trigram.MustNew(1, 1, 1), trigram.MustNew(1, 1, 1), trigram.MustNew(2, 2, 2)}
	s.InvertAlternate(true)
	assert.Equal(t, "333 111 444", s.String())
	s.InvertAlternate(false)
	assert.Equal(t, "333 333 444", s.String())
}

// TestConversions covers bytes, binary, diamond and polybius outputs.
func TestConversions(t *testing.T) {
	s := seq(0, 124, 65)
	assert.Equal(t, []byte{200, 68, 9}, s.Bytes(200))
	assert.Equal(t, []byte{251, 119, 60}, s.Bytes(-5))

	bin := trigram.Sequence{trigram.MustNew(2, 1, 0), trigram.MustNew(0, 1, 2)}.BinaryString(false)
	assert.Equal(t, "001011", bin)

	d := trigram.Sequence{trigram.MustNew(1, 1, 1), trigram.MustNew(1, 1, 1)}
	vals, err := d.DiamondValues(false, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 16}, vals)

	assert.Equal(t, []int{0, 19}, trigram.Sequence{trigram.MustNew(0, 0, 0), trigram.MustNew(4, 4, 4)}.PolybiusValues())
	assert.Equal(t, []int{3, 6}, trigram.Sequence{trigram.MustNew(1, 1, 1), trigram.MustNew(2, 2, 2)}.Sums())
	assert.Equal(t, 9, trigram.Sequence{trigram.MustNew(1, 1, 1), trigram.MustNew(2, 2, 2)}.Sum())
	assert.Equal(t, []int{62, 62}, d.IntsMapped(trigram.DigitMapping{0, 2, 1, 3, 4}))
}
