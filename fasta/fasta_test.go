package fasta_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/molecbio/seqalign/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = `>seq1 first record
ACGT
ACGT

>seq2
TTTT
`

// TestRead verifies header parsing, multi-line body concatenation and blank
// line handling.
func TestRead(t *testing.T) {
	records, err := fasta.Read(strings.NewReader(plain))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "seq1 first record", records[0].Name)
	assert.Equal(t, "ACGTACGT", records[0].Seq)
	assert.Equal(t, "seq2", records[1].Name)
	assert.Equal(t, "TTTT", records[1].Seq)
}

// TestRead_Errors covers the two malformed-input sentinels.
func TestRead_Errors(t *testing.T) {
	_, err := fasta.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, fasta.ErrNoRecords)

	_, err = fasta.Read(strings.NewReader("ACGT\n>late\nACGT\n"))
	assert.ErrorIs(t, err, fasta.ErrMissingHeader)
}

// TestRead_EmptyBody keeps a header with no sequence lines as an empty
// record: the aligner treats zero-length input as a valid boundary case.
func TestRead_EmptyBody(t *testing.T) {
	records, err := fasta.Read(strings.NewReader(">empty\n>full\nACGT\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0].Seq)
	assert.Equal(t, "ACGT", records[1].Seq)
}

// TestOpen_Plain reads a temp file from disk.
func TestOpen_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa")
	require.NoError(t, os.WriteFile(path, []byte(plain), 0o644))

	records, err := fasta.Open(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

// TestOpen_Gzip reads a gzip-compressed temp file.
func TestOpen_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(plain))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	records, err := fasta.Open(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ACGTACGT", records[0].Seq)
}

// TestOpen_Stdin swaps os.Stdin for a pipe, mirroring shell usage.
func TestOpen_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = w.WriteString(plain)
		_ = w.Close()
	}()

	records, err := fasta.Open("-")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

// TestOpen_Missing surfaces the underlying os error for absent files.
func TestOpen_Missing(t *testing.T) {
	_, err := fasta.Open(filepath.Join(t.TempDir(), "absent.fa"))
	assert.Error(t, err)
}
