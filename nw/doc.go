// Package nw computes optimal global pairwise alignments of two symbol
// sequences with the Needleman-Wunsch dynamic-programming algorithm.
//
// 🚀 What is Needleman-Wunsch?
//
//	Given two sequences and a scoring scheme (match reward, mismatch
//	penalty, linear gap penalty), it finds an end-to-end alignment of
//	maximal total score.  It is the classical tool for:
//	  • DNA / RNA / protein sequence comparison
//	  • edit-distance style string matching with custom costs
//	  • any pairwise correspondence where both inputs must be consumed whole
//
// ✨ Key properties:
//   - one canonical optimum: ties are broken diagonal → left → up, in that
//     fixed priority, so output is fully deterministic
//   - exact inverse reconstruction: stripping the gap symbol from either
//     aligned string reproduces the corresponding input unchanged
//   - explicit resource guard: the O(a·b) matrices are size-checked before
//     allocation (ErrTooLarge), never silently truncated
//
// ⚙️ Usage:
//
//	import "github.com/molecbio/seqalign/nw"
//
//	opts := nw.DefaultOptions()
//	opts.Match, opts.Mismatch, opts.Gap = 1, -1, -1
//
//	res, err := nw.Align("GCATGCU", "GATTACA", &opts)
//	if err != nil {
//	  // handle ErrTooLarge or ErrGapSymbolInInput
//	}
//	fmt.Println(res.AlignedA) // GCA-TGCU
//	fmt.Println(res.AlignedB) // G-ATTACA
//
// Performance:
//
//   - Time:   O(a·b)
//   - Memory: O(a·b) for the score and path matrices, O(a+b) for assembly
//
// Errors:
//
//   - ErrTooLarge          — matrix size would overflow or exceed MaxCells.
//   - ErrGapSymbolInInput  — the configured gap symbol occurs in an input.
//
// The computation is single-threaded and owns all of its state; concurrent
// Align calls with independent inputs are safe.
package nw
