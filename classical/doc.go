// Package classical provides the string and byte helpers that accompany
// trigram analysis: a Vigenère cipher over an arbitrary alphabet, a
// repeating-key byte shift, binary-string conversion and alphabet
// substitution of small integer values.
//
// All functions are pure: inputs are never modified and every result is a
// freshly allocated value. Strings are processed rune by rune, so alphabets
// may contain any Unicode letters (Ä, Ö, Š, ...).
package classical
