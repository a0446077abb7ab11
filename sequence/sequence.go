// Package sequence provides the named sequence record shared by the
// alignment packages, plus cleanup and identity helpers.
//
// What:
//
//   - Sequence pairs a display name with raw symbol data.
//   - Clean normalizes free-form input to the uppercase letter alphabet the
//     aligners expect (whitespace, digits and punctuation stripped).
//   - Identity computes the percent identity of an already aligned pair.
//
// Errors:
//
//   - ErrLengthMismatch: aligned strings of differing length.
//   - ErrEmptyAlignment: identity over a zero-length alignment is undefined.
package sequence

import "errors"

// Sentinel errors for identity calculations.
var (
	// ErrLengthMismatch indicates the aligned strings differ in length.
	ErrLengthMismatch = errors.New("sequence: aligned strings must have equal length")
	// ErrEmptyAlignment indicates a zero-length alignment has no identity.
	ErrEmptyAlignment = errors.New("sequence: alignment is empty")
)

// Sequence is a named sequence record, typically one FASTA entry.
type Sequence struct {
	Name string
	Seq  string
}

// Clean strips every non-letter byte and uppercases the rest, matching what
// the aligners expect from hand-typed or format-wrapped input. Multi-line
// FASTA bodies, whitespace and numbering columns all collapse away.
func Clean(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-('a'-'A'))
		}
	}
	return string(out)
}

// Identity returns the percent identity of an aligned pair: the share of
// positions where both strings carry the same symbol, times 100. Gap
// symbols participate like any other byte, so gap-vs-symbol positions count
// as differences.
func Identity(alignedA, alignedB string) (float64, error) {
	if len(alignedA) != len(alignedB) {
		return 0, ErrLengthMismatch
	}
	if len(alignedA) == 0 {
		return 0, ErrEmptyAlignment
	}

	matches := 0
	for k := 0; k < len(alignedA); k++ {
		if alignedA[k] == alignedB[k] {
			matches++
		}
	}
	return float64(matches) * 100.0 / float64(len(alignedA)), nil
}
