package render

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/glyphlab/trigram"
	"golang.org/x/text/encoding/unicode"
)

// MinPrintable is the smallest code point Chars emits; lower values are
// raised to a space.
const MinPrintable = 32

// Chars converts values+offset to characters, clamping control codes to ' '.
func Chars(values []int, offset int) string {
	out := make([]rune, len(values))
	for i, v := range values {
		n := v + offset
		if n < MinPrintable {
			n = MinPrintable
		}
		out[i] = rune(n)
	}

	return string(out)
}

// FrequencyReport formats a frequency table as
//
//	<n> unique trigram values:
//	<t1>,<t2>,...,<tn>
//
//	<symbol>,<count>   (one per line, by count then symbol)
//
// followed by a trailing blank line.
func FrequencyReport(freq map[trigram.Trigram]int) string {
	keys := trigram.SortedKeys(freq)

	var b strings.Builder
	fmt.Fprintf(&b, "%d unique trigram values:\n", len(keys))
	for i, t := range keys {
		b.WriteString(t.String())
		if i+1 == len(keys) {
			b.WriteByte('\n')
		} else {
			b.WriteByte(',')
		}
	}
	b.WriteByte('\n')

	byCount := slices.Clone(keys)
	slices.SortStableFunc(byCount, func(x, y trigram.Trigram) int {
		return cmp.Compare(freq[x], freq[y])
	})
	for _, t := range byCount {
		fmt.Fprintf(&b, "%s,%d\n", t, freq[t])
	}
	b.WriteByte('\n')

	return b.String()
}

// DecodeUTF16BE interprets b as big-endian UTF-16 text.
func DecodeUTF16BE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("render: odd UTF-16 byte count %d", len(b))
	}
	out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("render: decode UTF-16BE: %w", err)
	}

	return string(out), nil
}

// EncodeUTF16BE encodes s as big-endian UTF-16 without a byte-order mark.
func EncodeUTF16BE(s string) ([]byte, error) {
	out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("render: encode UTF-16BE: %w", err)
	}

	return out, nil
}

// Floats joins values with commas using the shortest exact decimal form.
func Floats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strings.Join(parts, ",")
}
