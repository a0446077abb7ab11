// Package seqalign is a small toolkit for global pairwise sequence
// alignment — from the core Needleman-Wunsch routine to batch pairwise
// identity analysis and FASTA input.
//
// 🚀 What is seqalign?
//
//	A deterministic, pure-Go alignment library that brings together:
//		• nw:       Needleman-Wunsch global alignment with linear gap costs
//		• sequence: sequence records, cleanup and percent-identity helpers
//		• pairwise: concurrent all-pairs alignment over a sequence set
//		• fasta:    minimal FASTA reading (plain, gzip, stdin)
//		• scheme:   scoring-scheme files for the CLI and callers
//
// ✨ Why choose seqalign?
//
//   - Deterministic output – a fixed diagonal→left→up tie-break yields one
//     canonical optimal alignment, reproducible across runs and platforms
//   - Explicit failure – oversized inputs surface a sentinel error instead
//     of silent truncation or unchecked allocation
//   - Pure Go – no cgo, no hidden deps in the core packages
//
// Under the hood, everything is organized under these subpackages:
//
//	nw/       — score/path matrices, backtracking, result assembly
//	sequence/ — Sequence record, Clean, Identity
//	pairwise/ — All (errgroup-bounded), IdentityMatrix
//	fasta/    — Read, Open
//	scheme/   — Scheme, Load, Default
//
// Quick ASCII example:
//
//	GCA-TGCU
//	| | |.|.
//	G-ATTACA
//
//	one optimal global alignment of GCATGCU and GATTACA under
//	match=+1, mismatch=-1, gap=-1.
//
// The seqalign binary under cmd/seqalign exposes the same operations on a
// command line: align two sequences, or compute a pairwise identity matrix
// over a FASTA file.
//
//	go get github.com/molecbio/seqalign/nw
package seqalign
