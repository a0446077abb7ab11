package pairwise

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/molecbio/seqalign/nw"
	"github.com/molecbio/seqalign/sequence"
)

// ErrTooFewSequences indicates fewer than two sequences were supplied.
var ErrTooFewSequences = errors.New("pairwise: need at least two sequences")

// Options configures an All run.
//
// Scoring – per-pair alignment parameters, handed through to nw.Align.
// Workers – maximum concurrent alignments; 0 means no limit.
type Options struct {
	Scoring nw.Options
	Workers int
}

// DefaultOptions returns Options with the reference scoring defaults and
// unbounded concurrency.
func DefaultOptions() Options {
	return Options{Scoring: nw.DefaultOptions()}
}

// Pair holds one aligned combination. I and J index the input slice with
// I < J, preserving combinations order.
type Pair struct {
	I, J     int
	A, B     sequence.Sequence
	Result   nw.Result
	Identity float64
}

// All aligns every unordered pair of seqs and computes its percent
// identity. Pairs are returned in combinations order: (0,1), (0,2), …,
// (n-2,n-1). A nil opts is equivalent to DefaultOptions().
//
// Alignments run concurrently under an errgroup; each goroutine writes a
// distinct result slot, so no locking is needed. The first error cancels
// the group context, pending alignments bail out before doing any work,
// and Wait returns that error as-is (errors.Is matches nw sentinels).
func All(seqs []sequence.Sequence, opts *Options) ([]Pair, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	n := len(seqs)
	if n < 2 {
		return nil, ErrTooFewSequences
	}

	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j, A: seqs[i], B: seqs[j]})
		}
	}

	group, ctx := errgroup.WithContext(context.Background())
	if cfg.Workers > 0 {
		group.SetLimit(cfg.Workers)
	}
	for k := range pairs {
		p := &pairs[k]
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := nw.Align(p.A.Seq, p.B.Seq, &cfg.Scoring)
			if err != nil {
				return err
			}
			id, err := sequence.Identity(res.AlignedA, res.AlignedB)
			if err != nil && !errors.Is(err, sequence.ErrEmptyAlignment) {
				return err
			}
			p.Result = res
			p.Identity = id
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// IdentityMatrix folds pairs into a symmetric n×n percent identity matrix.
// The diagonal is fixed at 100; cells without a corresponding pair stay 0.
func IdentityMatrix(pairs []Pair, n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 100.0
	}
	for _, p := range pairs {
		if p.I < n && p.J < n {
			m[p.I][p.J] = p.Identity
			m[p.J][p.I] = p.Identity
		}
	}
	return m
}
