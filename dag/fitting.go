package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// FittingGraph aligns w in full against a substring of v: root free-rides
// into every row-head (down, 0) so the real alignment may start anywhere
// along v, and every row-tail (down, |w|) free-rides to leaf so it may end
// as soon as w is fully consumed, regardless of how much of v remains.
type FittingGraph struct {
	grid
	freeRide core.Scorer
}

// NewFittingGraph constructs a FittingGraph over v and w.
func NewFittingGraph(v, w core.Sequence, subst, gapScore, freeRide core.Scorer) (*FittingGraph, error) {
	g, err := newGrid(v, w, subst, gapScore)
	if err != nil {
		return nil, err
	}
	if freeRide == nil {
		return nil, ErrNilScorer
	}
	return &FittingGraph{grid: g, freeRide: freeRide}, nil
}

// Root returns (0,0).
func (g *FittingGraph) Root() core.Node { return core.Node{} }

// Leaf returns (|v|,|w|).
func (g *FittingGraph) Leaf() core.Node {
	return core.Node{Down: g.downCnt - 1, Right: g.rightCnt - 1}
}

// HasNode reports whether n lies within the grid.
func (g *FittingGraph) HasNode(n core.Node) bool { return g.hasNode(n) }

func (g *FittingGraph) isRowHead(n core.Node) bool { return n.Right == 0 }
func (g *FittingGraph) isRowTail(n core.Node) bool { return n.Right == g.rightCnt-1 }

// HasEdge reports whether e is a valid normal transition or one of the
// root->row-head / row-tail->leaf free-rides.
func (g *FittingGraph) HasEdge(e core.Edge) bool {
	if !g.hasNode(e.Source) || !g.hasNode(e.Destination) {
		return false
	}
	if e.Kind == core.FreeRide {
		root, leaf := g.Root(), g.Leaf()
		if e.Source == root && g.isRowHead(e.Destination) && e.Destination != root {
			return true
		}
		if e.Destination == leaf && g.isRowTail(e.Source) && e.Source != leaf {
			return true
		}
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
func (g *FittingGraph) Nodes() iter.Seq[core.Node] { return g.nodesSeq() }

// Edges enumerates every normal and free-ride edge.
func (g *FittingGraph) Edges() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for e := range g.normalEdgesSeq() {
			if !yield(e) {
				return
			}
		}
		root, leaf := g.Root(), g.Leaf()
		for d := 0; d < g.downCnt; d++ {
			head := core.Node{Down: d, Right: 0}
			if head != root {
				if !yield(core.Edge{Source: root, Destination: head, Kind: core.FreeRide}) {
					return
				}
			}
			tail := core.Node{Down: d, Right: g.rightCnt - 1}
			if tail != leaf {
				if !yield(core.Edge{Source: tail, Destination: leaf, Kind: core.FreeRide}) {
					return
				}
			}
		}
	}
}

// Inputs enumerates n's incoming normal edges plus, if n is a row-head
// other than root, the root->n free-ride.
func (g *FittingGraph) Inputs(n core.Node) iter.Seq[core.Edge] {
	in := g.normalInputs(n)
	if g.isRowHead(n) && n != g.Root() {
		in = append(in, core.Edge{Source: g.Root(), Destination: n, Kind: core.FreeRide})
	}
	return sliceSeq(in)
}

// Outputs enumerates n's outgoing normal edges plus, if n is a row-tail
// other than leaf, the n->leaf free-ride.
func (g *FittingGraph) Outputs(n core.Node) iter.Seq[core.Edge] {
	out := g.normalOutputs(n)
	if g.isRowTail(n) && n != g.Leaf() {
		out = append(out, core.Edge{Source: n, Destination: g.Leaf(), Kind: core.FreeRide})
	}
	return sliceSeq(out)
}

// InDegree returns the number of n's incoming edges.
func (g *FittingGraph) InDegree(n core.Node) int {
	d := len(g.normalInputs(n))
	if g.isRowHead(n) && n != g.Root() {
		d++
	}
	return d
}

// OutDegree returns the number of n's outgoing edges.
func (g *FittingGraph) OutDegree(n core.Node) int {
	d := len(g.normalOutputs(n))
	if g.isRowTail(n) && n != g.Leaf() {
		d++
	}
	return d
}

// EdgeWeight resolves e's weight via the free-ride scorer for free-ride
// edges, substitution/gap otherwise.
func (g *FittingGraph) EdgeWeight(e core.Edge) core.Weight {
	if e.Kind == core.FreeRide {
		return g.freeRide(e, core.None(), core.None())
	}
	return g.edgeWeight(e)
}

// RowNodes enumerates row `down`'s nodes left to right.
func (g *FittingGraph) RowNodes(down int) iter.Seq[core.Node] { return g.rowNodesSeq(down) }

// Residents returns {root, leaf}: their slots must persist across the
// entire streaming walk since row-heads/row-tails span every row.
func (g *FittingGraph) Residents() []core.Node {
	root, leaf := g.Root(), g.Leaf()
	if root == leaf {
		return []core.Node{root}
	}
	return []core.Node{root, leaf}
}

// OutputsToResidents returns n's free-ride to leaf if n is a row-tail.
func (g *FittingGraph) OutputsToResidents(n core.Node) []core.Edge {
	if !g.isRowTail(n) || n == g.Leaf() {
		return nil
	}
	return []core.Edge{{Source: n, Destination: g.Leaf(), Kind: core.FreeRide}}
}

// InputsFromResidents returns n's free-ride from root if n is a row-head.
func (g *FittingGraph) InputsFromResidents(n core.Node) []core.Edge {
	if !g.isRowHead(n) || n == g.Root() {
		return nil
	}
	return []core.Edge{{Source: g.Root(), Destination: n, Kind: core.FreeRide}}
}

var _ Graph = (*FittingGraph)(nil)
