// Package fasta reads sequence records from FASTA encoded input.
//
// What:
//
//   - Read parses records from any io.Reader: a `>` header line followed by
//     one or more sequence lines. Blank lines are skipped, multi-line
//     bodies are concatenated.
//   - Open resolves a path: "-" streams stdin, a ".gz" suffix enables
//     transparent gzip decompression.
//
// Errors:
//
//   - ErrNoRecords:     the input held no FASTA records at all.
//   - ErrMissingHeader: sequence data appeared before the first header.
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/molecbio/seqalign/sequence"
)

// Sentinel errors for FASTA parsing.
var (
	// ErrNoRecords indicates the input contained no FASTA records.
	ErrNoRecords = errors.New("fasta: no records found")
	// ErrMissingHeader indicates sequence data before the first '>' header.
	ErrMissingHeader = errors.New("fasta: sequence data before first header")
)

// maxLineBytes caps a single input line; FASTA bodies are conventionally
// wrapped but single-line genome dumps are common enough to allow for.
const maxLineBytes = 64 * 1024 * 1024

// Read parses all records from r. The header is everything after '>' up to
// the end of the line; the record body keeps its symbols verbatim (use
// sequence.Clean before aligning loosely formatted data).
func Read(r io.Reader) ([]sequence.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), maxLineBytes)

	var (
		records []sequence.Sequence
		name    string
		body    strings.Builder
		open    bool
	)
	flush := func() {
		if open {
			records = append(records, sequence.Sequence{Name: name, Seq: body.String()})
			body.Reset()
		}
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line[0] == '>':
			flush()
			name = strings.TrimSpace(line[1:])
			open = true
		case !open:
			return nil, ErrMissingHeader
		default:
			body.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// Open reads all records from path. "-" reads stdin; a ".gz" suffix selects
// transparent gzip decompression.
func Open(path string) ([]sequence.Sequence, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, err
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return Read(r)
}
