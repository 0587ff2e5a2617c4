package backtrack_test

import (
	"testing"

	"github.com/katalvlaran/palign/backtrack"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/seq"
)

func buildSequences(n int) (seq.ByteSeq, seq.ByteSeq) {
	v := make([]byte, n)
	w := make([]byte, n)
	for i := 0; i < n; i++ {
		v[i] = byte('A' + i%26)
		w[i] = byte('A' + (i+1)%26)
	}
	return v, w
}

func benchmarkRunGlobal(b *testing.B, n int) {
	v, w := buildSequences(n)
	g, err := dag.NewGlobalGraph(v, w, scorer.Constant(1, -1), scorer.Gap(-2))
	if err != nil {
		b.Fatalf("NewGlobalGraph failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := backtrack.Run(g); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

func BenchmarkRunGlobalSmall(b *testing.B)  { benchmarkRunGlobal(b, 50) }
func BenchmarkRunGlobalMedium(b *testing.B) { benchmarkRunGlobal(b, 200) }

func BenchmarkRunExtendedGap(b *testing.B) {
	v, w := buildSequences(200)
	preset := scorer.DefaultAffine(-10, -1)
	g, err := dag.NewExtendedGapGraph(v, w, scorer.Constant(1, -1), preset.Open, preset.Extend, preset.Close)
	if err != nil {
		b.Fatalf("NewExtendedGapGraph failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := backtrack.Run(g); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
