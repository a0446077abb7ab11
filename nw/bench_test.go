package nw_test

import (
	"strings"
	"testing"

	"github.com/molecbio/seqalign/nw"
)

// benchmarkAlign is a helper that aligns two synthetic sequences of lengths
// n and m. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkAlign(b *testing.B, n, m int) {
	seqA := strings.Repeat("ACGT", n/4+1)[:n]
	seqB := strings.Repeat("ACGA", m/4+1)[:m]
	opts := nw.DefaultOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(seqA, seqB, &opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks a 100×100 alignment.
func BenchmarkAlign_Small(b *testing.B) {
	benchmarkAlign(b, 100, 100)
}

// BenchmarkAlign_Medium benchmarks a 500×500 alignment.
func BenchmarkAlign_Medium(b *testing.B) {
	benchmarkAlign(b, 500, 500)
}

// BenchmarkAlign_Skewed benchmarks a strongly asymmetric 1000×50 alignment.
func BenchmarkAlign_Skewed(b *testing.B) {
	benchmarkAlign(b, 1000, 50)
}
