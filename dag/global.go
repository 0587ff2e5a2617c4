package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// GlobalGraph is the Needleman-Wunsch alignment graph: no free-ride edges,
// no residents, the root is (0,0) and the leaf is (|v|,|w|).
type GlobalGraph struct {
	grid
}

// NewGlobalGraph constructs a GlobalGraph over v and w with the given
// substitution and gap scorers. Returns ErrNilSequence / ErrNilScorer on
// invalid input.
func NewGlobalGraph(v, w core.Sequence, subst, gapScore core.Scorer) (*GlobalGraph, error) {
	g, err := newGrid(v, w, subst, gapScore)
	if err != nil {
		return nil, err
	}
	return &GlobalGraph{grid: g}, nil
}

// Root returns (0,0).
func (g *GlobalGraph) Root() core.Node { return core.Node{} }

// Leaf returns (|v|,|w|).
func (g *GlobalGraph) Leaf() core.Node {
	return core.Node{Down: g.downCnt - 1, Right: g.rightCnt - 1}
}

// HasNode reports whether n lies within the grid.
func (g *GlobalGraph) HasNode(n core.Node) bool { return g.hasNode(n) }

// HasEdge reports whether e connects two in-bounds nodes via a valid
// single-step transition.
func (g *GlobalGraph) HasEdge(e core.Edge) bool {
	if !g.hasNode(e.Source) || !g.hasNode(e.Destination) {
		return false
	}
	for _, cand := range g.normalOutputs(e.Source) {
		if cand == e {
			return true
		}
	}
	return false
}

// Nodes enumerates every node in topological order.
func (g *GlobalGraph) Nodes() iter.Seq[core.Node] { return g.nodesSeq() }

// Edges enumerates every normal edge; GlobalGraph has no free-rides.
func (g *GlobalGraph) Edges() iter.Seq[core.Edge] { return g.normalEdgesSeq() }

// Inputs enumerates n's incoming edges.
func (g *GlobalGraph) Inputs(n core.Node) iter.Seq[core.Edge] { return sliceSeq(g.normalInputs(n)) }

// Outputs enumerates n's outgoing edges.
func (g *GlobalGraph) Outputs(n core.Node) iter.Seq[core.Edge] { return sliceSeq(g.normalOutputs(n)) }

// InDegree returns the number of n's incoming edges.
func (g *GlobalGraph) InDegree(n core.Node) int { return len(g.normalInputs(n)) }

// OutDegree returns the number of n's outgoing edges.
func (g *GlobalGraph) OutDegree(n core.Node) int { return len(g.normalOutputs(n)) }

// EdgeWeight resolves e's weight via the substitution or gap scorer.
func (g *GlobalGraph) EdgeWeight(e core.Edge) core.Weight { return g.edgeWeight(e) }

// RowNodes enumerates row `down`'s nodes left to right.
func (g *GlobalGraph) RowNodes(down int) iter.Seq[core.Node] { return g.rowNodesSeq(down) }

// Residents is empty: global alignment has no free-ride shortcuts.
func (g *GlobalGraph) Residents() []core.Node { return nil }

// OutputsToResidents is always empty for GlobalGraph.
func (g *GlobalGraph) OutputsToResidents(core.Node) []core.Edge { return nil }

// InputsFromResidents is always empty for GlobalGraph.
func (g *GlobalGraph) InputsFromResidents(core.Node) []core.Edge { return nil }

// sliceSeq adapts a small concrete slice to iter.Seq, used by every
// flavor's Inputs/Outputs to stay consistent with the Graph interface
// while keeping the bounded-fan-in/out case allocation-light.
func sliceSeq[T any](xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

var _ Graph = (*GlobalGraph)(nil)
