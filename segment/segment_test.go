package segment_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/palign/backtrack"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/segment"
	"github.com/katalvlaran/palign/seq"
	"github.com/stretchr/testify/require"
)

func TestComputeGlobalIsAlwaysOneSegmentNoHops(t *testing.T) {
	v, w := seq.FromString("hello"), seq.FromString("mellow")
	g, err := dag.NewGlobalGraph(v, w, scorer.Constant(1, -1), scorer.Gap(-1))
	require.NoError(t, err)

	want, err := backtrack.Run(g)
	require.NoError(t, err)

	res, err := segment.Compute(context.Background(), g, segment.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, want.Weight, res.Weight)
	require.Len(t, res.Parts, 1)
	require.Equal(t, segment.SegmentPart, res.Parts[0].Kind)
	require.Equal(t, g.Root(), res.Parts[0].From)
	require.Equal(t, g.Leaf(), res.Parts[0].To)
}

func TestComputeLocalOrdinarySkipNeedsNoTopLevelHop(t *testing.T) {
	v, w := seq.FromString("ab"), seq.FromString("zab")
	g, err := dag.NewLocalGraph(v, w, scorer.Constant(1, -5), scorer.Gap(-5), scorer.FreeRide(0))
	require.NoError(t, err)

	res, err := segment.Compute(context.Background(), g, segment.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, 2.0, float64(res.Weight))
	// the skip over "z" is recovered as an ordinary edge during path
	// reconstruction, not as a top-level segmenter hop.
	require.Len(t, res.Parts, 1)
	require.Equal(t, segment.SegmentPart, res.Parts[0].Kind)
	require.Equal(t, g.Root(), res.Parts[0].From)
	require.Equal(t, g.Leaf(), res.Parts[0].To)
}

func TestComputeLocalAllNegativePrefersWholeSkipHop(t *testing.T) {
	v, w := seq.FromString("ab"), seq.FromString("cd")
	g, err := dag.NewLocalGraph(v, w, scorer.Constant(-5, -5), scorer.Gap(-5), scorer.FreeRide(0))
	require.NoError(t, err)

	res, err := segment.Compute(context.Background(), g, segment.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, 0.0, float64(res.Weight))
	require.Len(t, res.Parts, 1)
	require.Equal(t, segment.HopPart, res.Parts[0].Kind)
	require.Equal(t, g.Root(), res.Parts[0].Edge.Source)
	require.Equal(t, g.Leaf(), res.Parts[0].Edge.Destination)
}

func TestComputeExtendedGapDegeneratesToOneSegment(t *testing.T) {
	v, w := seq.FromString("ab"), seq.FromString("a")
	preset := scorer.DefaultAffine(-10, -1)
	g, err := dag.NewExtendedGapGraph(v, w, scorer.Constant(2, -1), preset.Open, preset.Extend, preset.Close)
	require.NoError(t, err)

	res, err := segment.Compute(context.Background(), g, segment.DefaultEpsilon)
	require.NoError(t, err)
	require.Len(t, res.Parts, 1)
	require.Equal(t, segment.SegmentPart, res.Parts[0].Kind)
}

func TestComputeRejectsNilGraph(t *testing.T) {
	_, err := segment.Compute(context.Background(), nil, segment.DefaultEpsilon)
	require.ErrorIs(t, err, segment.ErrNilGraph)
}
