package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// LocalGraph is the Smith-Waterman alignment graph: root free-rides into
// every node, and every node free-rides into leaf, letting the best
// path skip arbitrary unaligned prefixes and suffixes of both sequences.
type LocalGraph struct {
	grid
	freeRide core.Scorer
}

// NewLocalGraph constructs a LocalGraph over v and w with the given
// substitution, gap and free-ride scorers.
func NewLocalGraph(v, w core.Sequence, subst, gapScore, freeRide core.Scorer) (*LocalGraph, error) {
	g, err := newGrid(v, w, subst, gapScore)
	if err != nil {
		return nil, err
	}
	if freeRide == nil {
		return nil, ErrNilScorer
	}
	return &LocalGraph{grid: g, freeRide: freeRide}, nil
}

// Root returns (0,0).
func (g *LocalGraph) Root() core.Node { return core.Node{} }

// Leaf returns (|v|,|w|).
func (g *LocalGraph) Leaf() core.Node {
	return core.Node{Down: g.downCnt - 1, Right: g.rightCnt - 1}
}

// HasNode reports whether n lies within the grid.
func (g *LocalGraph) HasNode(n core.Node) bool { return g.hasNode(n) }

// HasEdge reports whether e is a valid normal transition or one of the
// root->n / n->leaf free-rides.
func (g *LocalGraph) HasEdge(e core.Edge) bool {
	if !g.hasNode(e.Source) || !g.hasNode(e.Destination) {
		return false
	}
	if e.Kind == core.FreeRide {
		root, leaf := g.Root(), g.Leaf()
		if e.Source == root && e.Destination != root {
			return true
		}
		if e.Destination == leaf && e.Source != leaf {
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
func (g *LocalGraph) Nodes() iter.Seq[core.Node] { return g.nodesSeq() }

// Edges enumerates every normal and free-ride edge.
func (g *LocalGraph) Edges() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for e := range g.normalEdgesSeq() {
			if !yield(e) {
				return
			}
		}
		root, leaf := g.Root(), g.Leaf()
		for n := range g.nodesSeq() {
			if n != root {
				if !yield(core.Edge{Source: root, Destination: n, Kind: core.FreeRide}) {
					return
				}
			}
			if n != leaf {
				if !yield(core.Edge{Source: n, Destination: leaf, Kind: core.FreeRide}) {
					return
				}
			}
		}
	}
}

// Inputs enumerates n's incoming normal edges plus, unless n is the root,
// the root->n free-ride.
func (g *LocalGraph) Inputs(n core.Node) iter.Seq[core.Edge] {
	in := g.normalInputs(n)
	if n != g.Root() {
		in = append(in, core.Edge{Source: g.Root(), Destination: n, Kind: core.FreeRide})
	}
	return sliceSeq(in)
}

// Outputs enumerates n's outgoing normal edges plus, unless n is the leaf,
// the n->leaf free-ride.
func (g *LocalGraph) Outputs(n core.Node) iter.Seq[core.Edge] {
	out := g.normalOutputs(n)
	if n != g.Leaf() {
		out = append(out, core.Edge{Source: n, Destination: g.Leaf(), Kind: core.FreeRide})
	}
	return sliceSeq(out)
}

// InDegree returns the number of n's incoming edges.
func (g *LocalGraph) InDegree(n core.Node) int {
	d := len(g.normalInputs(n))
	if n != g.Root() {
		d++
	}
	return d
}

// OutDegree returns the number of n's outgoing edges.
func (g *LocalGraph) OutDegree(n core.Node) int {
	d := len(g.normalOutputs(n))
	if n != g.Leaf() {
		d++
	}
	return d
}

// EdgeWeight resolves e's weight: free-ride edges use the free-ride
// scorer, everything else falls back to substitution/gap.
func (g *LocalGraph) EdgeWeight(e core.Edge) core.Weight {
	if e.Kind == core.FreeRide {
		return g.freeRide(e, core.None(), core.None())
	}
	return g.edgeWeight(e)
}

// RowNodes enumerates row `down`'s nodes left to right.
func (g *LocalGraph) RowNodes(down int) iter.Seq[core.Node] { return g.rowNodesSeq(down) }

// Residents returns {root, leaf} in node order.
func (g *LocalGraph) Residents() []core.Node {
	root, leaf := g.Root(), g.Leaf()
	if root == leaf {
		return []core.Node{root}
	}
	return []core.Node{root, leaf}
}

// OutputsToResidents returns n's free-ride to leaf, unless n is the leaf.
func (g *LocalGraph) OutputsToResidents(n core.Node) []core.Edge {
	if n == g.Leaf() {
		return nil
	}
	return []core.Edge{{Source: n, Destination: g.Leaf(), Kind: core.FreeRide}}
}

// InputsFromResidents returns n's free-ride from root, unless n is the
// root.
func (g *LocalGraph) InputsFromResidents(n core.Node) []core.Edge {
	if n == g.Root() {
		return nil
	}
	return []core.Edge{{Source: g.Root(), Destination: n, Kind: core.FreeRide}}
}

var _ Graph = (*LocalGraph)(nil)
