package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molecbio/seqalign/pairwise"
	"github.com/molecbio/seqalign/sequence"
)

// runPairwise executes the pairwise command with args, returning stdout.
func runPairwise(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newPairwiseCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFasta(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestPairwiseCmd_Matrix renders the identity table with record names and
// the best-pair caption.
func TestPairwiseCmd_Matrix(t *testing.T) {
	path := writeFasta(t, ">alpha\nACGT\n>beta\nACGT\n>gamma\nTTTT\n")

	out, err := runPairwise(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "gamma")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "25.00")
	assert.Contains(t, out, "best: alpha / beta at 100.00%")
}

// TestPairwiseCmd_Workers verifies a bounded pool produces the same table.
func TestPairwiseCmd_Workers(t *testing.T) {
	path := writeFasta(t, ">a\nACGTACGT\n>b\nACGAACGA\n>c\nTTTT\n")

	unbounded, err := runPairwise(t, path)
	require.NoError(t, err)
	bounded, err := runPairwise(t, path, "--workers", "1")
	require.NoError(t, err)

	assert.Equal(t, unbounded, bounded)
}

// TestPairwiseCmd_WorkersFromEnv bounds the pool through the environment
// instead of the flag and still produces the same table.
func TestPairwiseCmd_WorkersFromEnv(t *testing.T) {
	path := writeFasta(t, ">a\nACGTACGT\n>b\nACGAACGA\n>c\nTTTT\n")

	unbounded, err := runPairwise(t, path)
	require.NoError(t, err)

	t.Setenv("SEQALIGN_RUN_WORKERS", "1")
	bounded, err := runPairwise(t, path)
	require.NoError(t, err)

	assert.Equal(t, unbounded, bounded)
}

// TestMostSimilar_TieBreaksByName picks the lexicographically first names
// among equal-identity pairs, whatever their input order.
func TestMostSimilar_TieBreaksByName(t *testing.T) {
	pairs := []pairwise.Pair{
		{A: sequence.Sequence{Name: "zeta"}, B: sequence.Sequence{Name: "eta"}, Identity: 75},
		{A: sequence.Sequence{Name: "alpha"}, B: sequence.Sequence{Name: "beta"}, Identity: 75},
		{A: sequence.Sequence{Name: "mu"}, B: sequence.Sequence{Name: "nu"}, Identity: 50},
	}

	best, ok := mostSimilar(pairs)
	require.True(t, ok)
	assert.Equal(t, "alpha", best.A.Name)
	assert.Equal(t, "beta", best.B.Name)
}

// TestPairwiseCmd_TooFewRecords propagates the pairwise sentinel.
func TestPairwiseCmd_TooFewRecords(t *testing.T) {
	path := writeFasta(t, ">only\nACGT\n")

	_, err := runPairwise(t, path)
	assert.Error(t, err)
}

// TestPairwiseCmd_MissingFile surfaces file errors.
func TestPairwiseCmd_MissingFile(t *testing.T) {
	_, err := runPairwise(t, filepath.Join(t.TempDir(), "absent.fa"))
	assert.Error(t, err)
}
