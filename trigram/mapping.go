package trigram

import "github.com/katalvlaran/glyphlab/permute"

// DigitMapping replaces each digit value d by m[d] before a derived
// computation (IntMapped, SumMapped, BinaryStringMapped).
type DigitMapping [MaxDigit + 1]uint8

// IdentityMapping maps every digit to itself.
var IdentityMapping = DigitMapping{0, 1, 2, 3, 4}

// AllDigitMappings returns the 120 bijective mappings of {0..4},
// starting with IdentityMapping.
func AllDigitMappings() []DigitMapping {
	out := make([]DigitMapping, 0, permute.Count(len(IdentityMapping)))
	for p := range permute.All(IdentityMapping[:]) {
		var m DigitMapping
		copy(m[:], p)
		out = append(out, m)
	}

	return out
}
