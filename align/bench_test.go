package align_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/palign/align"
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

func benchmarkAlignGlobal(b *testing.B, n int, opts ...align.Option) {
	v, w := buildSequences(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.AlignGlobal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1), opts...); err != nil {
			b.Fatalf("AlignGlobal failed: %v", err)
		}
	}
}

func BenchmarkAlignGlobalDenseSmall(b *testing.B) {
	benchmarkAlignGlobal(b, 100, align.WithBackend(align.Dense))
}

func BenchmarkAlignGlobalDenseMedium(b *testing.B) {
	benchmarkAlignGlobal(b, 500, align.WithBackend(align.Dense))
}

func BenchmarkAlignGlobalSlicedSmall(b *testing.B) {
	benchmarkAlignGlobal(b, 100, align.WithBackend(align.Sliced))
}

func BenchmarkAlignGlobalSlicedMedium(b *testing.B) {
	benchmarkAlignGlobal(b, 500, align.WithBackend(align.Sliced))
}
