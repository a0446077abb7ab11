// Package render formats aligned sequence pairs for terminal output: two
// wrapped sequence rows with a midline marking matches ('|'), mismatches
// ('.') and gaps (' '), optionally colorized for TTYs.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWrap is the conventional FASTA-style column width.
const DefaultWrap = 60

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	gapStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
)

// Renderer renders alignment blocks.
//
// Wrap  – symbols per row; values < 1 fall back to DefaultWrap.
// Color – apply lipgloss styles per symbol class. Leave false when writing
//
//	to pipes or files.
type Renderer struct {
	Wrap  int
	Color bool
}

// New returns a Renderer with the given wrap width and color mode.
func New(wrap int, color bool) *Renderer {
	if wrap < 1 {
		wrap = DefaultWrap
	}
	return &Renderer{Wrap: wrap, Color: color}
}

// Alignment renders the aligned pair as wrapped three-line blocks separated
// by blank lines. Both strings must already have equal length (as nw.Align
// guarantees); gap marks which byte is the gap symbol.
func (r *Renderer) Alignment(alignedA, alignedB string, gap byte) string {
	var sb strings.Builder
	for start := 0; start < len(alignedA); start += r.Wrap {
		end := start + r.Wrap
		if end > len(alignedA) {
			end = len(alignedA)
		}
		if start > 0 {
			sb.WriteByte('\n')
		}
		r.block(&sb, alignedA[start:end], alignedB[start:end], gap)
	}
	if len(alignedA) == 0 {
		sb.WriteString("(empty alignment)\n")
	}
	return sb.String()
}

// block writes one wrapped row triple: seqA slice, midline, seqB slice.
func (r *Renderer) block(sb *strings.Builder, rowA, rowB string, gap byte) {
	sb.WriteString(r.row(rowA, rowB, gap, true))
	sb.WriteByte('\n')
	for k := 0; k < len(rowA); k++ {
		switch {
		case rowA[k] == gap || rowB[k] == gap:
			sb.WriteByte(' ')
		case rowA[k] == rowB[k]:
			sb.WriteByte('|')
		default:
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(r.row(rowA, rowB, gap, false))
	sb.WriteByte('\n')
}

// row renders one sequence row, optionally styled per symbol class.
func (r *Renderer) row(rowA, rowB string, gap byte, top bool) string {
	row := rowA
	if !top {
		row = rowB
	}
	if !r.Color {
		return row
	}

	var sb strings.Builder
	for k := 0; k < len(row); k++ {
		cell := string(row[k])
		switch {
		case rowA[k] == gap || rowB[k] == gap:
			sb.WriteString(gapStyle.Render(cell))
		case rowA[k] == rowB[k]:
			sb.WriteString(matchStyle.Render(cell))
		default:
			sb.WriteString(mismatchStyle.Render(cell))
		}
	}
	return sb.String()
}
