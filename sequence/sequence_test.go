package sequence_test

import (
	"testing"

	"github.com/molecbio/seqalign/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClean verifies letter filtering and uppercasing across typical
// hand-typed and format-wrapped inputs.
func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "ACGT", "ACGT"},
		{"lowercase", "acgt", "ACGT"},
		{"wrapped with whitespace", "ac gt\nACGT\t", "ACGTACGT"},
		{"numbering columns", "1 acgt 10\n11 acgt 20", "ACGTACGT"},
		{"gap and punctuation stripped", "AC-GT*", "ACGT"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sequence.Clean(tc.in))
		})
	}
}

// TestIdentity checks the percent identity of aligned pairs, including the
// textbook alignment where 4 of 8 positions match.
func TestIdentity(t *testing.T) {
	id, err := sequence.Identity("GCA-TGCU", "G-ATTACA")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, id, 1e-9)

	id, err = sequence.Identity("ACGT", "ACGT")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, id, 1e-9)

	id, err = sequence.Identity("AAAA", "TTTT")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, id, 1e-9)
}

// TestIdentity_Errors verifies the sentinel errors for malformed input.
func TestIdentity_Errors(t *testing.T) {
	_, err := sequence.Identity("ACG", "AC")
	assert.ErrorIs(t, err, sequence.ErrLengthMismatch)

	_, err = sequence.Identity("", "")
	assert.ErrorIs(t, err, sequence.ErrEmptyAlignment)
}
