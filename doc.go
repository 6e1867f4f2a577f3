// Package glyphlab is a toolkit for analysing messages written in a
// closed alphabet of 125 trigrams and for running the classical ciphers
// that are tried against them.
//
// 🚀 What is a trigram message?
//
//	Every symbol is an ordered triple of digits (a, b, c) in 0..4. Messages
//	arrive as rows of digits, are grouped into trigrams and are studied by
//	frequency, index of coincidence and periodic IC profiles under each of
//	the six digit orderings.
//
// ✨ Packages:
//
//	trigram/       — Trigram, Sequence, Corpus, Alphabet, permutations, diamond & Polybius values
//	stats/         — generic frequencies, index of coincidence, periodic profiles, product IC
//	gridreader/    — CSV record parsing and grid linearisation (row, reversed, column order)
//	fractionation/ — Trifid-style cube cipher over strings and trigram sequences
//	classical/     — Vigenère, byte shift, binary strings, alphabet substitution
//	permute/       — lazy n! permutation iterator
//	render/        — text output: characters, frequency tables, UTF-16, CSV rows
//	cmd/glyphlab   — command-line front end (cobra)
//
// Quick example:
//
//	seq := trigram.FromInts([]int{7, 95, 31, 7})
//	ic, _ := seq.IndexOfCoincidence()   // 1/6
//
//	go install github.com/katalvlaran/glyphlab/cmd/glyphlab@latest
package glyphlab
