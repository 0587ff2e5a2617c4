package subdivide_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/palign/backtrack"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/seq"
	"github.com/katalvlaran/palign/subdivide"
	"github.com/stretchr/testify/require"
)

func assertContiguousFromRootToLeaf(t *testing.T, g dag.Graph, res subdivide.Result) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, g.Root(), res.Path[0].Source)
	require.Equal(t, g.Leaf(), res.Path[len(res.Path)-1].Destination)
	for i := 1; i < len(res.Path); i++ {
		require.Equal(t, res.Path[i-1].Destination, res.Path[i].Source)
	}
}

func TestRunMatchesBacktrackGlobal(t *testing.T) {
	v, w := seq.FromString("hello"), seq.FromString("mellow")
	g, err := dag.NewGlobalGraph(v, w, scorer.Constant(1, -1), scorer.Gap(-1))
	require.NoError(t, err)

	want, err := backtrack.Run(g)
	require.NoError(t, err)

	got, err := subdivide.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, want.Weight, got.Weight)
	assertContiguousFromRootToLeaf(t, g, got)
}

func TestRunMatchesBacktrackGlobalWiderGrid(t *testing.T) {
	v, w := seq.FromString("abcdefghij"), seq.FromString("azcdxfghkj")
	g, err := dag.NewGlobalGraph(v, w, scorer.Constant(1, -1), scorer.Gap(-1))
	require.NoError(t, err)

	want, err := backtrack.Run(g)
	require.NoError(t, err)

	got, err := subdivide.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, want.Weight, got.Weight)
	assertContiguousFromRootToLeaf(t, g, got)
}

func TestRunMatchesBacktrackLocal(t *testing.T) {
	v, w := seq.FromString("xxabcxx"), seq.FromString("zzabczz")
	g, err := dag.NewLocalGraph(v, w, scorer.Constant(2, -3), scorer.Gap(-2), scorer.FreeRide(0))
	require.NoError(t, err)

	want, err := backtrack.Run(g)
	require.NoError(t, err)

	got, err := subdivide.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, want.Weight, got.Weight)
}

func TestRunMatchesBacktrackExtendedGap(t *testing.T) {
	v, w := seq.FromString("abcde"), seq.FromString("ade")
	preset := scorer.DefaultAffine(-10, -1)
	g, err := dag.NewExtendedGapGraph(v, w, scorer.Constant(2, -1), preset.Open, preset.Extend, preset.Close)
	require.NoError(t, err)

	want, err := backtrack.Run(g)
	require.NoError(t, err)

	got, err := subdivide.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, want.Weight, got.Weight)
}

func TestRunRejectsNilGraph(t *testing.T) {
	_, err := subdivide.Run(context.Background(), nil)
	require.ErrorIs(t, err, subdivide.ErrNilGraph)
}
