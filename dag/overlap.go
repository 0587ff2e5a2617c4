package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// OverlapGraph aligns a free suffix of v against a free prefix of w: root
// free-rides into every row-head (down, 0) so the path may skip v's prefix,
// and every node of the last row free-rides to leaf so it may skip w's
// suffix once v is fully consumed.
type OverlapGraph struct {
	grid
	freeRide core.Scorer
}

// NewOverlapGraph constructs an OverlapGraph over v and w.
func NewOverlapGraph(v, w core.Sequence, subst, gapScore, freeRide core.Scorer) (*OverlapGraph, error) {
	g, err := newGrid(v, w, subst, gapScore)
	if err != nil {
		return nil, err
	}
	if freeRide == nil {
		return nil, ErrNilScorer
	}
	return &OverlapGraph{grid: g, freeRide: freeRide}, nil
}

// Root returns (0,0).
func (g *OverlapGraph) Root() core.Node { return core.Node{} }

// Leaf returns (|v|,|w|).
func (g *OverlapGraph) Leaf() core.Node {
	return core.Node{Down: g.downCnt - 1, Right: g.rightCnt - 1}
}

// HasNode reports whether n lies within the grid.
func (g *OverlapGraph) HasNode(n core.Node) bool { return g.hasNode(n) }

func (g *OverlapGraph) isRowHead(n core.Node) bool { return n.Right == 0 }
func (g *OverlapGraph) isLastRow(n core.Node) bool { return n.Down == g.downCnt-1 }

// HasEdge reports whether e is a valid normal transition or one of the
// root->row-head / last-row->leaf free-rides.
func (g *OverlapGraph) HasEdge(e core.Edge) bool {
	if !g.hasNode(e.Source) || !g.hasNode(e.Destination) {
		return false
	}
	if e.Kind == core.FreeRide {
		root, leaf := g.Root(), g.Leaf()
		if e.Source == root && g.isRowHead(e.Destination) && e.Destination != root {
			return true
		}
		if e.Destination == leaf && g.isLastRow(e.Source) && e.Source != leaf {
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
func (g *OverlapGraph) Nodes() iter.Seq[core.Node] { return g.nodesSeq() }

// Edges enumerates every normal and free-ride edge.
func (g *OverlapGraph) Edges() iter.Seq[core.Edge] {
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
		}
		for r := 0; r < g.rightCnt; r++ {
			tail := core.Node{Down: g.downCnt - 1, Right: r}
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
func (g *OverlapGraph) Inputs(n core.Node) iter.Seq[core.Edge] {
	in := g.normalInputs(n)
	if g.isRowHead(n) && n != g.Root() {
		in = append(in, core.Edge{Source: g.Root(), Destination: n, Kind: core.FreeRide})
	}
	return sliceSeq(in)
}

// Outputs enumerates n's outgoing normal edges plus, if n is in the last
// row and isn't leaf, the n->leaf free-ride.
func (g *OverlapGraph) Outputs(n core.Node) iter.Seq[core.Edge] {
	out := g.normalOutputs(n)
	if g.isLastRow(n) && n != g.Leaf() {
		out = append(out, core.Edge{Source: n, Destination: g.Leaf(), Kind: core.FreeRide})
	}
	return sliceSeq(out)
}

// InDegree returns the number of n's incoming edges.
func (g *OverlapGraph) InDegree(n core.Node) int {
	d := len(g.normalInputs(n))
	if g.isRowHead(n) && n != g.Root() {
		d++
	}
	return d
}

// OutDegree returns the number of n's outgoing edges.
func (g *OverlapGraph) OutDegree(n core.Node) int {
	d := len(g.normalOutputs(n))
	if g.isLastRow(n) && n != g.Leaf() {
		d++
	}
	return d
}

// EdgeWeight resolves e's weight via the free-ride scorer for free-ride
// edges, substitution/gap otherwise.
func (g *OverlapGraph) EdgeWeight(e core.Edge) core.Weight {
	if e.Kind == core.FreeRide {
		return g.freeRide(e, core.None(), core.None())
	}
	return g.edgeWeight(e)
}

// RowNodes enumerates row `down`'s nodes left to right.
func (g *OverlapGraph) RowNodes(down int) iter.Seq[core.Node] { return g.rowNodesSeq(down) }

// Residents returns {root, leaf}: row-heads span every row and last-row
// exits span the whole final row, so both endpoints need slots that
// persist across the entire streaming walk.
func (g *OverlapGraph) Residents() []core.Node {
	root, leaf := g.Root(), g.Leaf()
	if root == leaf {
		return []core.Node{root}
	}
	return []core.Node{root, leaf}
}

// OutputsToResidents returns n's free-ride to leaf if n is in the last row.
func (g *OverlapGraph) OutputsToResidents(n core.Node) []core.Edge {
	if !g.isLastRow(n) || n == g.Leaf() {
		return nil
	}
	return []core.Edge{{Source: n, Destination: g.Leaf(), Kind: core.FreeRide}}
}

// InputsFromResidents returns n's free-ride from root if n is a row-head.
func (g *OverlapGraph) InputsFromResidents(n core.Node) []core.Edge {
	if !g.isRowHead(n) || n == g.Root() {
		return nil
	}
	return []core.Edge{{Source: g.Root(), Destination: n, Kind: core.FreeRide}}
}

var _ Graph = (*OverlapGraph)(nil)
