// Package nw defines options, results and sentinel errors for the
// Needleman-Wunsch aligner.
package nw

import "errors"

// Sentinel errors returned by Align.
var (
	// ErrTooLarge indicates the (a+1)×(b+1) score/path matrices would
	// overflow the int index range or exceed Options.MaxCells.
	ErrTooLarge = errors.New("nw: alignment matrix exceeds the cell budget")

	// ErrGapSymbolInInput indicates the configured gap symbol occurs in one
	// of the input sequences, which would break gap-strip round-tripping.
	ErrGapSymbolInInput = errors.New("nw: gap symbol occurs in an input sequence")
)

// DefaultGapSymbol separates aligned symbols from inserted gaps in the
// output. Inputs must not contain it (see ErrGapSymbolInInput); choose a
// different Options.GapSymbol when '-' belongs to the working alphabet.
const DefaultGapSymbol byte = '-'

// Default scoring values, matching the reference aligner's defaults.
const (
	DefaultMatch    = 2
	DefaultMismatch = -1
	DefaultGap      = -1
)

// move encodes which recurrence branch produced a path-matrix cell.
// The numeric values mirror the reference encoding and never change:
// 0 terminates backtracking at the origin cell.
type move byte

const (
	moveOrigin move = iota // (0,0): backtracking stops here
	moveDiag               // consume one symbol from each sequence
	moveLeft               // gap in seqB, consume seqA[j-1]
	moveUp                 // gap in seqA, consume seqB[i-1]
)

// Options configures a single Align call.
//
// Match      – score added when two aligned symbols are equal.
// Mismatch   – score added when two aligned symbols differ.
// Gap        – score added per gap symbol introduced (linear, not affine).
//
//	All three are unconstrained signed integers; Gap is conventionally
//	negative but this is not enforced.
//
// GapSymbol  – byte emitted for gaps in the aligned output. The zero value
//
//	selects DefaultGapSymbol.
//
// MaxCells   – upper bound on (a+1)*(b+1) matrix cells; 0 means unbounded.
//
//	Exceeding it returns ErrTooLarge before any allocation.
type Options struct {
	Match     int
	Mismatch  int
	Gap       int
	GapSymbol byte
	MaxCells  int
}

// DefaultOptions returns an Options initialized with the reference scoring
// defaults: Match=2, Mismatch=-1, Gap=-1, GapSymbol='-', MaxCells unbounded.
func DefaultOptions() Options {
	return Options{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		Gap:       DefaultGap,
		GapSymbol: DefaultGapSymbol,
	}
}

// Result holds one optimal global alignment.
//
// AlignedA and AlignedB always have equal length; removing every GapSymbol
// from AlignedA yields seqA, and likewise AlignedB yields seqB. Score is the
// total alignment score, equal to the bottom-right score-matrix cell.
type Result struct {
	AlignedA string
	AlignedB string
	Score    int
}
