package trigram

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glyphlab/stats"
)

// Sequence is one message: an ordered list of trigrams.
// Elements are addressable, so s[i].Invert() mutates s in place.
type Sequence []Trigram

// FromRaw builds a sequence from digits consumed three at a time.
// Returns ErrPartialTrigram if len(raw) is not a multiple of 3 and
// ErrDigitOverflow if a digit exceeds 4. Nothing is returned on failure.
func FromRaw(raw []uint8) (Sequence, error) {
	if len(raw)%3 != 0 {
		return nil, fmt.Errorf("%d digits: %w", len(raw), ErrPartialTrigram)
	}
	out := make(Sequence, len(raw)/3)
	for i := range out {
		t, err := New(raw[3*i], raw[3*i+1], raw[3*i+2])
		if err != nil {
			return nil, fmt.Errorf("trigram %d: %w", i, err)
		}
		out[i] = t
	}

	return out, nil
}

// FromInts builds a sequence with FromInt applied to every value.
func FromInts(ns []int) Sequence {
	out := make(Sequence, len(ns))
	for i, n := range ns {
		out[i] = FromInt(n)
	}

	return out
}

// FromText builds one trigram per rune, from the rune's code point plus offset.
func FromText(s string, offset int) Sequence {
	out := make(Sequence, 0, len(s))
	for _, r := range s {
		out = append(out, FromInt(int(r)+offset))
	}

	return out
}

// FromBytes builds one trigram per byte, from the byte value plus offset.
func FromBytes(b []byte, offset int) Sequence {
	out := make(Sequence, len(b))
	for i, v := range b {
		out[i] = FromInt(int(v) + offset)
	}

	return out
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Frequencies counts every distinct trigram of s.
func (s Sequence) Frequencies() map[Trigram]int {
	return stats.Frequencies(s)
}

// IndexOfCoincidence returns Σ f·(f−1) / N·(N−1).
// Returns ErrTooShort if len(s) < 2.
func (s Sequence) IndexOfCoincidence() (float64, error) {
	return stats.IndexOfCoincidence(s)
}

// PeriodicProfile returns the mean column IC for key lengths 1..maxKeyLength.
// See stats.PeriodicProfile for the error contract.
func (s Sequence) PeriodicProfile(maxKeyLength int) ([]float64, error) {
	return stats.PeriodicProfile(s, maxKeyLength)
}

// SplitHalf returns every other trigram, starting at index 0 when takeOdd is
// set (index 0 counts as the first, "odd", position) and at index 1 otherwise.
func (s Sequence) SplitHalf(takeOdd bool) Sequence {
	start := 1
	if takeOdd {
		start = 0
	}
	out := make(Sequence, 0, (len(s)+1)/2)
	for i := start; i < len(s); i += 2 {
		out = append(out, s[i])
	}

	return out
}

// Odd returns SplitHalf(true): indices 0, 2, 4, ...
func (s Sequence) Odd() Sequence { return s.SplitHalf(true) }

// Even returns SplitHalf(false): indices 1, 3, 5, ...
func (s Sequence) Even() Sequence { return s.SplitHalf(false) }

// Reorder returns a copy in which trigrams at even indices (the "odd"
// positions 1st, 3rd, ...) are permuted by odd and the others by even.
func (s Sequence) Reorder(odd, even Permutation) Sequence {
	out := make(Sequence, len(s))
	for i, t := range s {
		if i%2 == 0 {
			out[i] = t.Reorder(odd)
		} else {
			out[i] = t.Reorder(even)
		}
	}

	return out
}

// Cipher applies a repeating-key Vigenère over ℤ/125ℤ:
//
//	out[i] = s[i] + key[i mod len(key)]   (encode)
//	out[i] = s[i] − key[i mod len(key)]   (decode)
//
// Returns ErrEmptyKey for an empty key.
func (s Sequence) Cipher(key Sequence, decode bool) (Sequence, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	out := make(Sequence, len(s))
	for i, t := range s {
		k := key[i%len(key)]
		if decode {
			out[i] = t.Sub(k)
		} else {
			out[i] = t.Add(k)
		}
	}

	return out, nil
}

// CipherWithAlphabet is Cipher with every key trigram first replaced by its
// offset in alphabet. Returns ErrSymbolNotInAlphabet if a key trigram is
// missing from alphabet, and ErrEmptyKey for an empty key.
func (s Sequence) CipherWithAlphabet(key Sequence, alphabet Alphabet, decode bool) (Sequence, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	offsets := make([]int, len(key))
	for i, k := range key {
		off, err := alphabet.Offset(k)
		if err != nil {
			return nil, fmt.Errorf("key position %d: %w", i, err)
		}
		offsets[i] = off
	}
	out := make(Sequence, len(s))
	for i, t := range s {
		off := offsets[i%len(offsets)]
		if decode {
			out[i] = t.SubInt(off)
		} else {
			out[i] = t.AddInt(off)
		}
	}

	return out, nil
}

// InvertAlternate inverts every second trigram in place, starting with
// index 0 when startWithFirst is set and with index 1 otherwise.
func (s Sequence) InvertAlternate(startWithFirst bool) {
	start := 1
	if startWithFirst {
		start = 0
	}
	for i := start; i < len(s); i += 2 {
		s[i].Invert()
	}
}

// Ints returns the integer value of every trigram.
func (s Sequence) Ints() []int {
	out := make([]int, len(s))
	for i, t := range s {
		out[i] = t.Int()
	}

	return out
}

// IntsMapped returns IntMapped(m) for every trigram.
func (s Sequence) IntsMapped(m DigitMapping) []int {
	out := make([]int, len(s))
	for i, t := range s {
		out[i] = t.IntMapped(m)
	}

	return out
}

// Text renders each trigram as the rune Int()+offset. No clamping is
// applied; a negative or invalid code point becomes U+FFFD. Use render.Chars
// for the printable-clamped variant.
func (s Sequence) Text(offset int) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, t := range s {
		sb.WriteRune(rune(t.Int() + offset))
	}

	return sb.String()
}

// Bytes returns (Int()+offset) mod 256 per trigram, using the non-negative remainder.
func (s Sequence) Bytes(offset int) []byte {
	out := make([]byte, len(s))
	for i, t := range s {
		out[i] = byte(((t.Int()+offset)%256 + 256) % 256)
	}

	return out
}

// BinaryString concatenates the unary encodings of all trigrams. The invert
// flag applies to the first trigram and alternates for each following one.
func (s Sequence) BinaryString(invert bool) string {
	return s.BinaryStringMapped(invert, IdentityMapping)
}

// BinaryStringMapped is BinaryString with digits remapped through m.
func (s Sequence) BinaryStringMapped(invert bool, m DigitMapping) string {
	var sb strings.Builder
	for _, t := range s {
		sb.WriteString(t.BinaryStringMapped(invert, m))
		invert = !invert
	}

	return sb.String()
}

// DiamondValues returns the diamond value of every trigram, using reverseOdd
// for indices 0, 2, 4, ... and reverseEven for the others. Values are 1..25.
func (s Sequence) DiamondValues(reverseOdd, reverseEven bool) ([]byte, error) {
	out := make([]byte, len(s))
	for i, t := range s {
		rev := reverseEven
		if i%2 == 0 {
			rev = reverseOdd
		}
		v, err := t.DiamondValue(rev)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = byte(v)
	}

	return out, nil
}

// PolybiusValues returns the Polybius cube value (0..24) of every trigram.
func (s Sequence) PolybiusValues() []int {
	out := make([]int, len(s))
	for i, t := range s {
		out[i] = t.PolybiusValue()
	}

	return out
}

// Sums returns the digit sum of every trigram.
func (s Sequence) Sums() []int {
	out := make([]int, len(s))
	for i, t := range s {
		out[i] = t.Sum()
	}

	return out
}

// Sum returns the total digit sum of s.
func (s Sequence) Sum() int {
	var total int
	for _, t := range s {
		total += t.Sum()
	}

	return total
}

// String renders the trigrams separated by single spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}
