package trigram

import (
	"fmt"
	"strings"
)

// Order is the size of the trigram group: 5³.
const Order = 125

// MaxDigit is the largest value a single digit may hold.
const MaxDigit = 4

// Trigram is a triple of base-5 digits. The zero value is 000.
// Fields are unexported so every Trigram passes through a validating constructor.
type Trigram struct {
	a, b, c uint8
}

// Position selects one of the three digits.
type Position uint8

const (
	// PosA is the most significant digit.
	PosA Position = iota
	// PosB is the middle digit.
	PosB
	// PosC is the least significant digit.
	PosC
)

// inversions reverses an eye direction: 0 stays centred, 1↔3 and 2↔4.
var inversions = [MaxDigit + 1]uint8{0, 3, 4, 1, 2}

// FromInt builds the trigram of n mod 125, using the non-negative remainder.
// It never fails: FromInt(-1) is 444, FromInt(125) is 000.
func FromInt(n int) Trigram {
	n = (n%Order + Order) % Order

	return Trigram{a: uint8(n / 25), b: uint8(n % 25 / 5), c: uint8(n % 5)}
}

// New builds a trigram from explicit digits.
// Returns ErrDigitOverflow if any digit exceeds 4.
func New(a, b, c uint8) (Trigram, error) {
	if a > MaxDigit || b > MaxDigit || c > MaxDigit {
		return Trigram{}, fmt.Errorf("%d%d%d: %w", a, b, c, ErrDigitOverflow)
	}

	return Trigram{a: a, b: b, c: c}, nil
}

// MustNew is New that panics on invalid digits. Intended for literals.
func MustNew(a, b, c uint8) Trigram {
	t, err := New(a, b, c)
	if err != nil {
		panic(err)
	}

	return t
}

// A returns the first digit.
func (t Trigram) A() uint8 { return t.a }

// B returns the second digit.
func (t Trigram) B() uint8 { return t.b }

// C returns the third digit.
func (t Trigram) C() uint8 { return t.c }

// Digits returns the digits in order a, b, c.
func (t Trigram) Digits() [3]uint8 { return [3]uint8{t.a, t.b, t.c} }

// Digit returns the digit at pos, or 0 for an invalid position.
func (t Trigram) Digit(pos Position) uint8 {
	switch pos {
	case PosA:
		return t.a
	case PosB:
		return t.b
	case PosC:
		return t.c
	}

	return 0
}

// Int returns a·25 + b·5 + c, always in [0,125).
func (t Trigram) Int() int {
	return int(t.a)*25 + int(t.b)*5 + int(t.c)
}

// IntMapped is Int with every digit first replaced by m[digit].
func (t Trigram) IntMapped(m DigitMapping) int {
	return int(m[t.a])*25 + int(m[t.b])*5 + int(m[t.c])
}

// Add returns t + o in ℤ/125ℤ.
func (t Trigram) Add(o Trigram) Trigram { return t.AddInt(o.Int()) }

// AddInt returns the trigram of t.Int() + n.
func (t Trigram) AddInt(n int) Trigram { return FromInt(t.Int() + n) }

// Sub returns the trigram of t.Int() − o.Int(); it is the exact inverse of Add.
func (t Trigram) Sub(o Trigram) Trigram { return t.SubInt(o.Int()) }

// SubInt returns the trigram of t.Int() − n.
func (t Trigram) SubInt(n int) Trigram { return FromInt(t.Int() - n) }

// SwapAB returns (b, a, c).
func (t Trigram) SwapAB() Trigram { return Trigram{a: t.b, b: t.a, c: t.c} }

// SwapAC returns (c, b, a).
func (t Trigram) SwapAC() Trigram { return Trigram{a: t.c, b: t.b, c: t.a} }

// SwapBC returns (a, c, b).
func (t Trigram) SwapBC() Trigram { return Trigram{a: t.a, b: t.c, c: t.b} }

// RotateForward returns (b, c, a).
func (t Trigram) RotateForward() Trigram { return Trigram{a: t.b, b: t.c, c: t.a} }

// RotateBackward returns (c, a, b).
func (t Trigram) RotateBackward() Trigram { return Trigram{a: t.c, b: t.a, c: t.b} }

// Identity returns t unchanged.
func (t Trigram) Identity() Trigram { return t }

// Reorder returns a copy of t with its digits permuted by p.
// An unknown permutation behaves as the identity.
func (t Trigram) Reorder(p Permutation) Trigram {
	switch p {
	case BAC:
		return t.SwapAB()
	case CBA:
		return t.SwapAC()
	case ACB:
		return t.SwapBC()
	case BCA:
		return t.RotateForward()
	case CAB:
		return t.RotateBackward()
	}

	return t
}

// Inverted returns a copy with every digit inverted.
func (t Trigram) Inverted() Trigram {
	return Trigram{a: inversions[t.a], b: inversions[t.b], c: inversions[t.c]}
}

// Invert inverts all three digits in place.
func (t *Trigram) Invert() {
	*t = t.Inverted()
}

// InvertDigit inverts one digit in place.
// Returns ErrDigitPosition for a position other than PosA, PosB or PosC.
func (t *Trigram) InvertDigit(pos Position) error {
	switch pos {
	case PosA:
		t.a = inversions[t.a]
	case PosB:
		t.b = inversions[t.b]
	case PosC:
		t.c = inversions[t.c]
	default:
		return fmt.Errorf("position %d: %w", pos, ErrDigitPosition)
	}

	return nil
}

// Permute reorders the digits in place.
func (t *Trigram) Permute(p Permutation) {
	*t = t.Reorder(p)
}

// Compare orders trigrams lexicographically by (a, b, c).
// It returns -1, 0 or +1.
func (t Trigram) Compare(o Trigram) int {
	d := t.Int() - o.Int()
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}

	return 0
}

// Less reports whether t sorts before o.
func (t Trigram) Less(o Trigram) bool { return t.Compare(o) < 0 }

// Sum returns a + b + c.
func (t Trigram) Sum() int { return int(t.a) + int(t.b) + int(t.c) }

// SumMapped returns m[a] + m[b] + m[c].
func (t Trigram) SumMapped(m DigitMapping) int {
	return int(m[t.a]) + int(m[t.b]) + int(m[t.c])
}

// BinaryString renders the digits as unary runs: a copies of one bit,
// b copies of the other, c copies of the first again. With invert=false
// the first bit is '0'.
func (t Trigram) BinaryString(invert bool) string {
	return binaryRuns(int(t.a), int(t.b), int(t.c), invert)
}

// BinaryStringMapped is BinaryString with each digit first replaced by m[digit].
func (t Trigram) BinaryStringMapped(invert bool, m DigitMapping) string {
	return binaryRuns(int(m[t.a]), int(m[t.b]), int(m[t.c]), invert)
}

func binaryRuns(a, b, c int, invert bool) string {
	first, second := "0", "1"
	if invert {
		first, second = second, first
	}
	var sb strings.Builder
	sb.Grow(a + b + c)
	sb.WriteString(strings.Repeat(first, a))
	sb.WriteString(strings.Repeat(second, b))
	sb.WriteString(strings.Repeat(first, c))

	return sb.String()
}

// String renders the digits, e.g. "321".
func (t Trigram) String() string {
	return string([]byte{'0' + t.a, '0' + t.b, '0' + t.c})
}
