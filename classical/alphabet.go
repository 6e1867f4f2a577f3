package classical

import "fmt"

// DropOneAlphabets returns len(base) alphabets; the i-th is base with its
// i-th rune removed.
func DropOneAlphabets(base string) []string {
	rs := []rune(base)
	out := make([]string, len(rs))
	for i := range rs {
		cut := make([]rune, 0, len(rs)-1)
		cut = append(cut, rs[:i]...)
		cut = append(cut, rs[i+1:]...)
		out[i] = string(cut)
	}

	return out
}

// Substitute maps each value v to alphabet[v-base].
// Diamond values run 1..25, so Substitute(vals, alphabet, 1) spells them out.
func Substitute(values []byte, alphabet string, base int) (string, error) {
	rs := []rune(alphabet)
	out := make([]rune, len(values))
	for i, v := range values {
		idx := int(v) - base
		if idx < 0 || idx >= len(rs) {
			return "", fmt.Errorf("value %d at %d (alphabet of %d, base %d): %w",
				v, i, len(rs), base, ErrOutOfAlphabet)
		}
		out[i] = rs[idx]
	}

	return string(out), nil
}
