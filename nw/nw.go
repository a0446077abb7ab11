package nw

import (
	"math"
	"strings"
)

// Align computes one optimal global alignment of seqA against seqB.
//
// The computation runs in three strict stages:
//
//  1. Matrix builder — fill the (b+1)×(a+1) score and path matrices, rows
//     over seqB, columns over seqA, from the gap-cost boundary inward.
//  2. Backtracker    — walk the path matrix from (b,a) to (0,0), emitting
//     aligned symbols and gaps in reverse.
//  3. Assembler      — trim the emission buffers to the true alignment
//     length and return forward-ordered strings.
//
// Ties in the recurrence are resolved diagonal → left → up, in that fixed
// priority, which selects a single canonical alignment among equal-scoring
// optima. A nil opts is equivalent to DefaultOptions().
//
// Returns:
//
//   - Result with two equal-length aligned strings and the optimal score.
//   - ErrTooLarge if the matrices would overflow int indexing or exceed
//     Options.MaxCells.
//   - ErrGapSymbolInInput if the gap symbol occurs in either input.
//
// Complexity:
//
//   - Time:   O(a·b)
//   - Memory: O(a·b)
func Align(seqA, seqB string, opts *Options) (Result, error) {
	// 1) Resolve options; the zero GapSymbol falls back to the default.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
		if cfg.GapSymbol == 0 {
			cfg.GapSymbol = DefaultGapSymbol
		}
	}

	// 2) Validate the gap symbol stays outside the working alphabet.
	if strings.IndexByte(seqA, cfg.GapSymbol) >= 0 || strings.IndexByte(seqB, cfg.GapSymbol) >= 0 {
		return Result{}, ErrGapSymbolInInput
	}

	// 3) Allocate both matrices, guarding against overflow and the budget.
	m, err := newMatrices(len(seqB)+1, len(seqA)+1, cfg.MaxCells)
	if err != nil {
		return Result{}, err
	}

	// 4) Stage one: populate scores and paths.
	m.fill(seqA, seqB, &cfg)

	// 5) Stages two and three: backtrack and assemble.
	alignedA, alignedB := backtrack(seqA, seqB, m, cfg.GapSymbol)

	return Result{
		AlignedA: string(alignedA),
		AlignedB: string(alignedB),
		Score:    m.score(len(seqB), len(seqA)),
	}, nil
}

// matrices holds the score and path grids as contiguous row-major slices.
// Cell (i,j) lives at index i*cols+j; slice indexing bounds-checks every
// access, so no raw offset can escape the grid.
type matrices struct {
	rows, cols int
	scores     []int
	paths      []move
}

// newMatrices validates the requested shape against int overflow and the
// optional cell budget before allocating anything.
func newMatrices(rows, cols, maxCells int) (*matrices, error) {
	if rows > math.MaxInt/cols {
		return nil, ErrTooLarge
	}
	cells := rows * cols
	if maxCells > 0 && cells > maxCells {
		return nil, ErrTooLarge
	}
	return &matrices{
		rows:   rows,
		cols:   cols,
		scores: make([]int, cells),
		paths:  make([]move, cells),
	}, nil
}

func (m *matrices) score(i, j int) int { return m.scores[i*m.cols+j] }

func (m *matrices) path(i, j int) move { return m.paths[i*m.cols+j] }

func (m *matrices) set(i, j, score int, p move) {
	idx := i*m.cols + j
	m.scores[idx] = score
	m.paths[idx] = p
}

// fill populates both matrices. Row 0 and column 0 are fixed gap-cost
// boundaries; every interior cell derives from its diagonal, left and up
// neighbors and is never touched again.
func (m *matrices) fill(seqA, seqB string, cfg *Options) {
	// Boundary: aligning a prefix against the empty sequence costs one gap
	// per symbol. Cell (0,0) keeps the zero value moveOrigin.
	for j := 1; j < m.cols; j++ {
		m.set(0, j, j*cfg.Gap, moveLeft)
	}
	for i := 1; i < m.rows; i++ {
		m.set(i, 0, i*cfg.Gap, moveUp)
	}

	// Interior recurrence. The nested comparisons are the tie-break
	// contract: diagonal wins over left, left wins over up.
	var diag, left, up int
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			diag = m.score(i-1, j-1)
			if seqB[i-1] == seqA[j-1] {
				diag += cfg.Match
			} else {
				diag += cfg.Mismatch
			}
			left = m.score(i, j-1) + cfg.Gap
			up = m.score(i-1, j) + cfg.Gap

			switch {
			case diag >= left && diag >= up:
				m.set(i, j, diag, moveDiag)
			case left >= up:
				m.set(i, j, left, moveLeft)
			default:
				m.set(i, j, up, moveUp)
			}
		}
	}
}

// backtrack walks the path matrix from (b,a) to (0,0) and assembles the
// aligned byte sequences. The emission buffers are preallocated to the
// maximum alignment length a+b and written back-to-front; the returned
// slices are trimmed to the steps actually taken, already forward-ordered.
func backtrack(seqA, seqB string, m *matrices, gap byte) (alignedA, alignedB []byte) {
	maxLen := len(seqA) + len(seqB)
	bufA := make([]byte, maxLen)
	bufB := make([]byte, maxLen)

	i, j := len(seqB), len(seqA)
	pos := maxLen
	for {
		p := m.path(i, j)
		if p == moveOrigin {
			break
		}
		pos--
		switch p {
		case moveDiag:
			bufA[pos] = seqA[j-1]
			bufB[pos] = seqB[i-1]
			i--
			j--
		case moveLeft:
			bufA[pos] = seqA[j-1]
			bufB[pos] = gap
			j--
		case moveUp:
			bufA[pos] = gap
			bufB[pos] = seqB[i-1]
			i--
		}
	}

	return bufA[pos:], bufB[pos:]
}
