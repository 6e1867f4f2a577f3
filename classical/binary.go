package classical

import (
	"fmt"
	"strings"
)

// BinaryStringToBytes packs a string of '0'/'1' characters, eight per byte,
// most significant bit first.
func BinaryStringToBytes(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, fmt.Errorf("length %d: %w", len(s), ErrBinaryLength)
	}
	out := make([]byte, len(s)/8)
	for i := 0; i < len(s); i++ {
		var bit byte
		switch s[i] {
		case '0':
		case '1':
			bit = 1
		default:
			return nil, fmt.Errorf("%q at %d: %w", s[i], i, ErrBinaryDigit)
		}
		out[i/8] = out[i/8]<<1 | bit
	}

	return out, nil
}

// PadBinary appends pad until len(s) is a multiple of 8.
func PadBinary(s string, pad byte) string {
	if r := len(s) % 8; r != 0 {
		return s + strings.Repeat(string(pad), 8-r)
	}

	return s
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}

	return string(rs)
}
