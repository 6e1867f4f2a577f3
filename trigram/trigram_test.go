package trigram_test

import (
	"testing"

	"github.com/katalvlaran/glyphlab/trigram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allTrigrams enumerates the whole group in integer order.
func allTrigrams() []trigram.Trigram {
	out := make([]trigram.Trigram, trigram.Order)
	for i := range out {
		out[i] = trigram.FromInt(i)
	}
	return out
}

// TestFromInt_Digits checks decomposition on reference values.
func TestFromInt_Digits(t *testing.T) {
	cases := []struct {
		n       int
		a, b, c uint8
	}{
		{0, 0, 0, 0},
		{10, 0, 2, 0},
		{125, 0, 0, 0},
		{-1, 4, 4, 4},
		{86, 3, 2, 1},
		{-126, 4, 4, 4},
	}
	for _, tc := range cases {
		tr := trigram.FromInt(tc.n)
		assert.Equal(t, [3]uint8{tc.a, tc.b, tc.c}, tr.Digits(), "FromInt(%d)", tc.n)
		assert.Equal(t, tc.a, tr.A())
		assert.Equal(t, tc.b, tr.B())
		assert.Equal(t, tc.c, tr.C())
	}
}

// TestFromInt_RoundTrip verifies the Euclidean reduction over a wide range.
func TestFromInt_RoundTrip(t *testing.T) {
	for n := -500; n <= 500; n++ {
		want := ((n % 125) + 125) % 125
		assert.Equal(t, want, trigram.FromInt(n).Int(), "n=%d", n)
	}
}

// TestNew_Overflow rejects digits above 4.
func TestNew_Overflow(t *testing.T) {
	_, err := trigram.New(5, 0, 0)
	assert.ErrorIs(t, err, trigram.ErrDigitOverflow)
	_, err = trigram.New(0, 0, 9)
	assert.ErrorIs(t, err, trigram.ErrDigitOverflow)

	tr, err := trigram.New(4, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, "432", tr.String())
	assert.Equal(t, 4*25+3*5+2, tr.Int())

	assert.Panics(t, func() { trigram.MustNew(0, 7, 0) })
}

// TestComparison covers value equality and lexicographic ordering.
func TestComparison(t *testing.T) {
	a := trigram.MustNew(0, 0, 0)
	b := trigram.MustNew(4, 4, 4)
	c := trigram.MustNew(2, 4, 4)
	d := trigram.MustNew(3, 0, 0)
	e := trigram.MustNew(2, 4, 4)

	assert.True(t, a != b)
	assert.True(t, b != c)
	assert.True(t, c != d)
	assert.True(t, c == e)

	assert.False(t, b.Less(a))
	assert.True(t, a.Less(b))
	assert.Equal(t, 0, c.Compare(e))
	assert.Equal(t, 1, b.Compare(c))
	assert.True(t, c.Less(d))
}

// TestArithmetic checks group addition and the one-sided subtraction.
func TestArithmetic(t *testing.T) {
	x := trigram.FromInt(120)
	y := trigram.FromInt(10)
	assert.Equal(t, 5, x.Add(y).Int())
	assert.Equal(t, 110, x.Sub(y).Int())
	assert.Equal(t, 115, y.Sub(trigram.FromInt(20)).Int())
	assert.Equal(t, 0, x.AddInt(5).Int())
	assert.Equal(t, 124, trigram.FromInt(0).SubInt(1).Int())

	for _, p := range allTrigrams() {
		for _, q := range []trigram.Trigram{trigram.FromInt(0), trigram.FromInt(1), trigram.FromInt(77)} {
			assert.Equal(t, p, p.Add(q).Sub(q))
		}
	}
}

// TestPermutations_Structure checks the six named permutations on distinct digits.
func TestPermutations_Structure(t *testing.T) {
	tr := trigram.MustNew(1, 2, 3)
	assert.Equal(t, "213", tr.SwapAB().String())
	assert.Equal(t, "321", tr.SwapAC().String())
	assert.Equal(t, "132", tr.SwapBC().String())
	assert.Equal(t, "231", tr.RotateForward().String())
	assert.Equal(t, "312", tr.RotateBackward().String())
	assert.Equal(t, "123", tr.Identity().String())

	want := map[trigram.Permutation]string{
		trigram.ABC: "123", trigram.BAC: "213", trigram.CBA: "321",
		trigram.ACB: "132", trigram.BCA: "231", trigram.CAB: "312",
	}
	seen := map[string]bool{}
	for _, p := range trigram.Permutations() {
		got := tr.Reorder(p).String()
		assert.Equal(t, want[p], got, p.String())
		seen[got] = true
	}
	assert.Len(t, seen, 6, "the six permutations must be distinct")
}

// TestPermutations_Involutions checks swaps, rotations and inverses on every trigram.
func TestPermutations_Involutions(t *testing.T) {
	for _, tr := range allTrigrams() {
		assert.Equal(t, tr, tr.SwapAB().SwapAB())
		assert.Equal(t, tr, tr.SwapAC().SwapAC())
		assert.Equal(t, tr, tr.SwapBC().SwapBC())
		assert.Equal(t, tr, tr.RotateForward().RotateBackward())
		assert.Equal(t, tr, tr.RotateBackward().RotateForward())
		for _, p := range trigram.Permutations() {
			assert.Equal(t, tr, tr.Reorder(p).Reorder(p.Inverse()))
		}
	}
}

// TestParsePermutation covers names and unknown input.
func TestParsePermutation(t *testing.T) {
	p, err := trigram.ParsePermutation(" bca ")
	require.NoError(t, err)
	assert.Equal(t, trigram.BCA, p)

	_, err = trigram.ParsePermutation("abd")
	assert.ErrorIs(t, err, trigram.ErrUnknownPermutation)
	assert.Equal(t, "Permutation(9)", trigram.Permutation(9).String())
}

// TestInversion checks the digit involution and in-place mutation.
func TestInversion(t *testing.T) {
	tr := trigram.MustNew(0, 1, 2)
	assert.Equal(t, "034", tr.Inverted().String())

	tr.Invert()
	assert.Equal(t, "034", tr.String())

	require.NoError(t, tr.InvertDigit(trigram.PosB))
	assert.Equal(t, "014", tr.String())
	require.NoError(t, tr.InvertDigit(trigram.PosC))
	assert.Equal(t, "012", tr.String())
	assert.ErrorIs(t, tr.InvertDigit(trigram.Position(3)), trigram.ErrDigitPosition)

	for _, x := range allTrigrams() {
		y := x
		y.Invert()
		y.Invert()
		assert.Equal(t, x, y)
		for _, pos := range []trigram.Position{trigram.PosA, trigram.PosB, trigram.PosC} {
			z := x
			require.NoError(t, z.InvertDigit(pos))
			require.NoError(t, z.InvertDigit(pos))
			assert.Equal(t, x, z)
		}
	}
}

// TestPermute mutates in place.
func TestPermute(t *testing.T) {
	tr := trigram.MustNew(1, 2, 3)
	tr.Permute(trigram.BCA)
	assert.Equal(t, "231", tr.String())
}

// TestDiamondValue checks reference walks and the 1..25 range.
func TestDiamondValue(t *testing.T) {
	cases := []struct {
		tr      trigram.Trigram
		reverse bool
		want    int
	}{
		{trigram.MustNew(0, 0, 0), false, 13},
		{trigram.MustNew(1, 1, 1), false, 10},
		{trigram.MustNew(1, 1, 1), true, 16},
		{trigram.MustNew(2, 2, 2), false, 25},
		{trigram.MustNew(4, 4, 4), false, 1},
		{trigram.MustNew(2, 0, 1), false, 18},
		{trigram.MustNew(1, 3, 0), false, 13},
	}
	for _, tc := range cases {
		got, err := tc.tr.DiamondValue(tc.reverse)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s reverse=%t", tc.tr, tc.reverse)
	}
	for _, tr := range allTrigrams() {
		for _, rev := range []bool{false, true} {
			v, err := tr.DiamondValue(rev)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 25)
		}
	}
}

// TestPolybius checks reference cells of the shifted cube.
func TestPolybius(t *testing.T) {
	cube := trigram.PolybiusCube
	assert.Equal(t, 0, cube[0][0][0])
	assert.Equal(t, 5, cube[0][1][0])
	assert.Equal(t, 5, cube[1][0][0])
	assert.Equal(t, 11, cube[1][1][1])
	assert.Equal(t, 17, cube[1][2][2])
	assert.Equal(t, 22, cube[2][2][2])
	assert.Equal(t, 14, cube[2][0][4])
	assert.Equal(t, 19, cube[4][4][4])

	assert.Equal(t, 19, trigram.MustNew(4, 4, 4).PolybiusValue())
	for _, tr := range allTrigrams() {
		v := tr.PolybiusValue()
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 24)
	}
}

// TestSumAndMapping covers digit sums and mapped integer values.
func TestSumAndMapping(t *testing.T) {
	tr := trigram.MustNew(4, 1, 0)
	assert.Equal(t, 5, tr.Sum())
	m := trigram.DigitMapping{4, 3, 2, 1, 0}
	assert.Equal(t, 0*25+3*5+4, tr.IntMapped(m))
	assert.Equal(t, 7, tr.SumMapped(m))
	assert.Equal(t, tr.Int(), tr.IntMapped(trigram.IdentityMapping))

	all := trigram.AllDigitMappings()
	require.Len(t, all, 120)
	assert.Equal(t, trigram.IdentityMapping, all[0])
	assert.Equal(t, trigram.DigitMapping{4, 3, 2, 1, 0}, all[119])
}

// TestBinaryString covers unary runs and inversion.
func TestBinaryString(t *testing.T) {
	tr := trigram.MustNew(2, 1, 3)
	assert.Equal(t, "001000", tr.BinaryString(false))
	assert.Equal(t, "110111", tr.BinaryString(true))
	assert.Equal(t, "", trigram.MustNew(0, 0, 0).BinaryString(false))

	m := trigram.DigitMapping{0, 2, 1, 3, 4}
	assert.Equal(t, "001", trigram.MustNew(1, 2, 0).BinaryStringMapped(false, m))
}
