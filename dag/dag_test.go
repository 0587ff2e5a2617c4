package dag_test

import (
	"testing"

	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/seq"
	"github.com/stretchr/testify/require"
)

func subst() core.Scorer    { return scorer.Constant(1, -1) }
func gap() core.Scorer      { return scorer.Gap(-2) }
func freeRide() core.Scorer { return scorer.FreeRide(0) }

// collect drains an iter.Seq[core.Node] into a slice for easy assertions.
func collectNodes(t *testing.T, g dag.Graph) []core.Node {
	t.Helper()
	var out []core.Node
	for n := range g.Nodes() {
		out = append(out, n)
	}
	return out
}

// every flavor must expose every node in strict topological order and
// must respect "every node but root has in-degree >= 1, every node but
// leaf has out-degree >= 1".
func assertTopologicalAndConnected(t *testing.T, g dag.Graph) {
	t.Helper()
	nodes := collectNodes(t, g)
	require.NotEmpty(t, nodes)
	for i := 1; i < len(nodes); i++ {
		require.True(t, nodes[i-1].Less(nodes[i]), "nodes out of order at %d: %v then %v", i, nodes[i-1], nodes[i])
	}
	root, leaf := g.Root(), g.Leaf()
	for _, n := range nodes {
		if n != root {
			require.GreaterOrEqual(t, g.InDegree(n), 1, "node %v has no predecessor", n)
		}
		if n != leaf {
			require.GreaterOrEqual(t, g.OutDegree(n), 1, "node %v has no successor", n)
		}
	}
}

func TestGlobalGraphProperties(t *testing.T) {
	v, w := seq.FromString("abc"), seq.FromString("azc")
	g, err := dag.NewGlobalGraph(v, w, subst(), gap())
	require.NoError(t, err)
	assertTopologicalAndConnected(t, g)
	require.Empty(t, g.Residents())
	require.Equal(t, core.Node{Down: 0, Right: 0}, g.Root())
	require.Equal(t, core.Node{Down: 3, Right: 3}, g.Leaf())
}

func TestLocalGraphProperties(t *testing.T) {
	v, w := seq.FromString("hello"), seq.FromString("mellow")
	g, err := dag.NewLocalGraph(v, w, subst(), gap(), freeRide())
	require.NoError(t, err)
	assertTopologicalAndConnected(t, g)
	require.ElementsMatch(t, []core.Node{g.Root(), g.Leaf()}, g.Residents())

	mid := core.Node{Down: 2, Right: 3}
	ins := g.InputsFromResidents(mid)
	require.Len(t, ins, 1)
	require.Equal(t, g.Root(), ins[0].Source)
	outs := g.OutputsToResidents(mid)
	require.Len(t, outs, 1)
	require.Equal(t, g.Leaf(), outs[0].Destination)
}

func TestFittingGraphFreeRidePredicates(t *testing.T) {
	v, w := seq.FromString("aaalmnaaa"), seq.FromString("lmn")
	g, err := dag.NewFittingGraph(v, w, subst(), gap(), freeRide())
	require.NoError(t, err)
	assertTopologicalAndConnected(t, g)

	rowHead := core.Node{Down: 4, Right: 0}
	require.Len(t, g.InputsFromResidents(rowHead), 1)
	nonHead := core.Node{Down: 4, Right: 1}
	require.Empty(t, g.InputsFromResidents(nonHead))

	rowTail := core.Node{Down: 4, Right: w.Len()}
	require.Len(t, g.OutputsToResidents(rowTail), 1)
	nonTail := core.Node{Down: 4, Right: w.Len() - 1}
	require.Empty(t, g.OutputsToResidents(nonTail))
}

func TestOverlapGraphFreeRidePredicates(t *testing.T) {
	v, w := seq.FromString("aaaaalmn"), seq.FromString("lmnzzzzz")
	g, err := dag.NewOverlapGraph(v, w, subst(), gap(), freeRide())
	require.NoError(t, err)
	assertTopologicalAndConnected(t, g)

	rowHead := core.Node{Down: 3, Right: 0}
	require.Len(t, g.InputsFromResidents(rowHead), 1)

	lastRowMid := core.Node{Down: v.Len(), Right: 2}
	require.Len(t, g.OutputsToResidents(lastRowMid), 1)
	midRow := core.Node{Down: 3, Right: 2}
	require.Empty(t, g.OutputsToResidents(midRow))
}

func TestExtendedGapGraphLayers(t *testing.T) {
	v, w := seq.FromString("ab"), seq.FromString("a")
	preset := scorer.DefaultAffine(-10, -1)
	g, err := dag.NewExtendedGapGraph(v, w, subst(), preset.Open, preset.Extend, preset.Close)
	require.NoError(t, err)
	require.Equal(t, 3, g.DepthCount())

	root := g.Root()
	require.Equal(t, core.Diagonal, root.Depth)

	outs := make([]core.Edge, 0)
	for e := range g.Outputs(root) {
		outs = append(outs, e)
	}
	require.Len(t, outs, 3) // diag, open-down, open-right

	openDown := core.Edge{Source: root, Destination: core.Node{Down: 1, Right: 0, Depth: core.InsertDown}, Move: core.OpenDown}
	require.True(t, g.HasEdge(openDown))
	off := openDown.Offsets()
	require.True(t, off.HasDown)
	require.Equal(t, core.Weight(-10), g.EdgeWeight(openDown))

	extend := core.Edge{
		Source:      core.Node{Down: 1, Right: 0, Depth: core.InsertDown},
		Destination: core.Node{Down: 2, Right: 0, Depth: core.InsertDown},
		Move:        core.ExtendDown,
	}
	require.True(t, g.HasEdge(extend))
	require.Equal(t, core.Weight(-1), g.EdgeWeight(extend))

	closeEdge := core.Edge{
		Source:      core.Node{Down: 2, Right: 0, Depth: core.InsertDown},
		Destination: core.Node{Down: 2, Right: 0, Depth: core.Diagonal},
		Kind:        core.FreeRide,
		Move:        core.CloseDown,
	}
	require.True(t, g.HasEdge(closeEdge))
	require.Equal(t, core.Weight(0), g.EdgeWeight(closeEdge))
	closeOff := closeEdge.Offsets()
	require.False(t, closeOff.HasDown)
	require.False(t, closeOff.HasRight)
}

func TestMiddleSlice(t *testing.T) {
	v, w := seq.FromString("abcd"), seq.FromString("abcd")
	g, err := dag.NewGlobalGraph(v, w, subst(), gap())
	require.NoError(t, err)

	from, to := core.Node{Down: 1, Right: 1}, core.Node{Down: 3, Right: 3}
	s := dag.MiddleSlice(g, from, to)
	require.Equal(t, from, s.Root())
	require.Equal(t, to, s.Leaf())
	require.False(t, s.HasNode(core.Node{Down: 0, Right: 0}))
	require.True(t, s.HasNode(core.Node{Down: 2, Right: 2}))

	for n := range s.Nodes() {
		require.True(t, n.Down >= from.Down && n.Down <= to.Down)
		require.True(t, n.Right >= from.Right && n.Right <= to.Right)
	}
}
