package align_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palign/align"
	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/seq"
)

func bothBackends(t *testing.T, run func(t *testing.T, opts ...align.Option)) {
	t.Run("dense", func(t *testing.T) { run(t, align.WithBackend(align.Dense)) })
	t.Run("sliced", func(t *testing.T) { run(t, align.WithBackend(align.Sliced)) })
}

func TestAlignGlobalHelloMellow(t *testing.T) {
	// The best path pays the h/m mismatch (-1), matches e,l,l,o (+1 each),
	// then pays one trailing gap for w's extra 'w' (-1): 4 - 1 - 1 = 2.
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("hello"), seq.FromString("mellow")
		res, err := align.AlignGlobal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(2), res.Weight)
	})
}

func TestAlignGlobalAbcAzc(t *testing.T) {
	// With gap=0, skipping the mismatched 'b'/'z' pair via two zero-cost
	// gaps (0+0) beats paying the mismatch penalty (-1): 1 + 0 + 0 + 1 = 2.
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("abc"), seq.FromString("azc")
		res, err := align.AlignGlobal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(0), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(2), res.Weight)
	})
}

func TestAlignGlobalAbcdefgAbcZefg(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("abcdefg"), seq.FromString("abcZefg")
		res, err := align.AlignGlobal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(0), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(6), res.Weight)
	})
}

func TestAlignLocalHelloInHaystack(t *testing.T) {
	// v's "hello" and w="mellow" share the literal substring "ello" (4
	// exact matches, no gap or mismatch needed), which local alignment is
	// free to pick over the longer "hello"/"mellow" span: 4*1 = 4, strictly
	// better than paying for the h/m mismatch and the trailing gap.
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v := seq.FromString("abcdefg hello hijklmnop")
		w := seq.FromString("mellow")
		res, err := align.AlignLocal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1), scorer.FreeRide(0), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(4), res.Weight)
	})
}

func TestAlignFittingLmnInsideAaalmnaaa(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("aaalmnaaa"), seq.FromString("lmn")
		res, err := align.AlignFitting(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1), scorer.FreeRide(0), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(3), res.Weight)
	})
}

func TestAlignOverlapSuffixPrefix(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("aaaaalmn"), seq.FromString("lmnzzzzz")
		res, err := align.AlignOverlap(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1), scorer.FreeRide(0), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(3), res.Weight)
	})
}

func TestAlignExtendedGapMatchesGlobalOnNoGapInput(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("abc"), seq.FromString("abc")
		res, err := align.AlignExtendedGap(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-10), scorer.Gap(-1), opts...)
		require.NoError(t, err)
		assert.Equal(t, core.Weight(3), res.Weight)
	})
}

func TestAlignExtendedGapPrefersOneRunOverManyOpens(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...align.Option) {
		v, w := seq.FromString("abcde"), seq.FromString("ade")
		res, err := align.AlignExtendedGap(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-10), scorer.Gap(-1), opts...)
		require.NoError(t, err)
		// one gap-open plus one gap-extend (-10-1) beats two independent
		// opens (-10-10) for skipping "bc".
		assert.Equal(t, core.Weight(1+1+1-10-1), res.Weight)
	})
}

func TestAlignRejectsNilSequence(t *testing.T) {
	_, err := align.AlignGlobal(context.Background(), nil, seq.FromString("a"), scorer.Constant(1, -1), scorer.Gap(-1))
	assert.ErrorIs(t, err, align.ErrNilSequence)
}

func TestAlignStrictModeAcceptsWellFormedPath(t *testing.T) {
	v, w := seq.FromString("hello"), seq.FromString("mellow")
	res, err := align.AlignGlobal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1), align.WithStrict())
	require.NoError(t, err)
	assert.Equal(t, core.Weight(2), res.Weight)
}

func TestAlignSlicedHonorsWorkerCount(t *testing.T) {
	v, w := seq.FromString("hello"), seq.FromString("mellow")
	res, err := align.AlignGlobal(context.Background(), v, w, scorer.Constant(1, -1), scorer.Gap(-1),
		align.WithBackend(align.Sliced), align.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, core.Weight(2), res.Weight)
}
