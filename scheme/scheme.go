// Package scheme loads linear scoring schemes from YAML files, the
// configuration surface the seqalign CLI exposes next to raw flags.
//
// A scheme file holds the three scoring integers and an optional gap
// symbol:
//
//	match: 1
//	mismatch: -1
//	gap: -1
//	gap_symbol: "-"
//
// Omitted keys keep the reference defaults. The gap symbol must be exactly
// one byte (ErrBadGapSymbol otherwise).
package scheme

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/molecbio/seqalign/nw"
)

// ErrBadGapSymbol indicates a gap symbol that is not exactly one byte.
var ErrBadGapSymbol = errors.New("scheme: gap symbol must be a single byte")

// Scheme is a serializable linear scoring scheme.
type Scheme struct {
	Match     int    `yaml:"match"`
	Mismatch  int    `yaml:"mismatch"`
	Gap       int    `yaml:"gap"`
	GapSymbol string `yaml:"gap_symbol,omitempty"`
}

// Default returns the scheme mirroring nw.DefaultOptions.
func Default() Scheme {
	return Scheme{
		Match:     nw.DefaultMatch,
		Mismatch:  nw.DefaultMismatch,
		Gap:       nw.DefaultGap,
		GapSymbol: string(nw.DefaultGapSymbol),
	}
}

// Load reads a scheme file. Keys absent from the file keep their Default()
// values; unknown keys are rejected to catch typos early.
func Load(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, err
	}

	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scheme{}, fmt.Errorf("scheme: parse %s: %w", path, err)
	}
	if _, err := s.Options(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}

// Options converts the scheme into nw alignment options, validating the gap
// symbol width.
func (s Scheme) Options() (nw.Options, error) {
	opts := nw.DefaultOptions()
	opts.Match = s.Match
	opts.Mismatch = s.Mismatch
	opts.Gap = s.Gap
	if s.GapSymbol != "" {
		if len(s.GapSymbol) != 1 {
			return nw.Options{}, ErrBadGapSymbol
		}
		opts.GapSymbol = s.GapSymbol[0]
	}
	return opts, nil
}
