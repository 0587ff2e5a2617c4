package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// ExtendedGapGraph is the three-plane affine-gap alignment graph: a
// Diagonal plane for match/mismatch, and an InsertDown / InsertRight plane
// each for an open-or-extended gap. A gap is entered from Diagonal by
// consuming one element (OpenDown/OpenRight, priced by gapOpen), continues
// by consuming further elements within its own plane (ExtendDown/
// ExtendRight, priced by gapExtend), and returns to Diagonal at the same
// grid cell for free (CloseDown/CloseRight, a zero-consuming, zero-weight
// free-ride by default).
//
// Root and leaf are both on the Diagonal plane; ExtendedGapGraph has no
// long-distance shortcuts, so its resident set exists only for interface
// uniformity with the other free-ride-bearing flavors and its
// OutputsToResidents/InputsFromResidents are always empty — a walker
// reaches every close transition through ordinary Inputs/Outputs instead.
type ExtendedGapGraph struct {
	grid
	gapOpen, gapExtend, gapClose core.Scorer
}

// NewExtendedGapGraph constructs an ExtendedGapGraph over v and w. gapOpen
// prices a gap's first consumed element, gapExtend prices every subsequent
// one, and gapClose prices returning to the Diagonal plane (0 by default,
// by convention, when the caller passes a scorer that always returns 0).
func NewExtendedGapGraph(v, w core.Sequence, subst, gapOpen, gapExtend, gapClose core.Scorer) (*ExtendedGapGraph, error) {
	if v == nil || w == nil {
		return nil, ErrNilSequence
	}
	if subst == nil || gapOpen == nil || gapExtend == nil || gapClose == nil {
		return nil, ErrNilScorer
	}
	g := grid{
		v: v, w: w,
		downCnt:    v.Len() + 1,
		rightCnt:   w.Len() + 1,
		substScore: subst,
		gapScore:   gapExtend,
	}
	return &ExtendedGapGraph{grid: g, gapOpen: gapOpen, gapExtend: gapExtend, gapClose: gapClose}, nil
}

// Root returns the Diagonal-plane origin (0,0).
func (g *ExtendedGapGraph) Root() core.Node { return core.Node{Depth: core.Diagonal} }

// Leaf returns the Diagonal-plane terminus (|v|,|w|).
func (g *ExtendedGapGraph) Leaf() core.Node {
	return core.Node{Down: g.downCnt - 1, Right: g.rightCnt - 1, Depth: core.Diagonal}
}

// HasNode reports whether n lies within the grid on one of the three
// planes. InsertDown(0,*) and InsertRight(*,0) are excluded: a gap cannot
// open before the first element it would consume, so these cells are never
// reachable by any edge.
func (g *ExtendedGapGraph) HasNode(n core.Node) bool {
	if !inBounds1Layer(g.downCnt, g.rightCnt, n.Down, n.Right) {
		return false
	}
	switch n.Depth {
	case core.Diagonal:
		return true
	case core.InsertDown:
		return n.Down >= 1
	case core.InsertRight:
		return n.Right >= 1
	default:
		return false
	}
}

// diagOutputs returns n's diagonal-plane outgoing edges: match/mismatch,
// plus gap-open into each insert plane.
func (g *ExtendedGapGraph) diagOutputs(n core.Node) []core.Edge {
	out := make([]core.Edge, 0, 3)
	if n.Down+1 < g.downCnt && n.Right+1 < g.rightCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down + 1, Right: n.Right + 1, Depth: core.Diagonal}, Move: core.Diag})
	}
	if n.Down+1 < g.downCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down + 1, Right: n.Right, Depth: core.InsertDown}, Move: core.OpenDown})
	}
	if n.Right+1 < g.rightCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down, Right: n.Right + 1, Depth: core.InsertRight}, Move: core.OpenRight})
	}
	return out
}

// diagInputs returns n's diagonal-plane incoming edges: match/mismatch,
// plus gap-close from each insert plane at the same cell, when that plane
// has a valid cell there.
func (g *ExtendedGapGraph) diagInputs(n core.Node) []core.Edge {
	in := make([]core.Edge, 0, 3)
	if n.Down-1 >= 0 && n.Right-1 >= 0 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down - 1, Right: n.Right - 1, Depth: core.Diagonal}, Destination: n, Move: core.Diag})
	}
	if n.Down >= 1 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down, Right: n.Right, Depth: core.InsertDown}, Destination: n, Kind: core.FreeRide, Move: core.CloseDown})
	}
	if n.Right >= 1 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down, Right: n.Right, Depth: core.InsertRight}, Destination: n, Kind: core.FreeRide, Move: core.CloseRight})
	}
	return in
}

// insertDownOutputs returns an InsertDown node's outgoing edges: extend
// (stay in plane, consume a down element) and close (return to Diagonal).
func (g *ExtendedGapGraph) insertDownOutputs(n core.Node) []core.Edge {
	out := make([]core.Edge, 0, 2)
	if n.Down+1 < g.downCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down + 1, Right: n.Right, Depth: core.InsertDown}, Move: core.ExtendDown})
	}
	out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down, Right: n.Right, Depth: core.Diagonal}, Kind: core.FreeRide, Move: core.CloseDown})
	return out
}

// insertDownInputs returns a valid InsertDown node's (n.Down >= 1)
// incoming edges: extend from the InsertDown cell one row up, when that
// cell is itself a valid gap cell, plus open from the Diagonal cell one row
// up at the same column.
func (g *ExtendedGapGraph) insertDownInputs(n core.Node) []core.Edge {
	in := make([]core.Edge, 0, 2)
	if n.Down-1 >= 1 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down - 1, Right: n.Right, Depth: core.InsertDown}, Destination: n, Move: core.ExtendDown})
	}
	in = append(in, core.Edge{Source: core.Node{Down: n.Down - 1, Right: n.Right, Depth: core.Diagonal}, Destination: n, Move: core.OpenDown})
	return in
}

func (g *ExtendedGapGraph) insertRightOutputs(n core.Node) []core.Edge {
	out := make([]core.Edge, 0, 2)
	if n.Right+1 < g.rightCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down, Right: n.Right + 1, Depth: core.InsertRight}, Move: core.ExtendRight})
	}
	out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down, Right: n.Right, Depth: core.Diagonal}, Kind: core.FreeRide, Move: core.CloseRight})
	return out
}

// insertRightInputs returns a valid InsertRight node's (n.Right >= 1)
// incoming edges: extend from the InsertRight cell one column left, when
// that cell is itself a valid gap cell, plus open from the Diagonal cell
// one column left at the same row.
func (g *ExtendedGapGraph) insertRightInputs(n core.Node) []core.Edge {
	in := make([]core.Edge, 0, 2)
	if n.Right-1 >= 1 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down, Right: n.Right - 1, Depth: core.InsertRight}, Destination: n, Move: core.ExtendRight})
	}
	in = append(in, core.Edge{Source: core.Node{Down: n.Down, Right: n.Right - 1, Depth: core.Diagonal}, Destination: n, Move: core.OpenRight})
	return in
}

// HasEdge reports whether e is a valid transition between two in-bounds
// nodes of this graph.
func (g *ExtendedGapGraph) HasEdge(e core.Edge) bool {
	if !g.HasNode(e.Source) || !g.HasNode(e.Destination) {
		return false
	}
	for _, cand := range g.outputsFor(e.Source) {
		if cand == e {
			return true
		}
	}
	return false
}

func (g *ExtendedGapGraph) outputsFor(n core.Node) []core.Edge {
	switch n.Depth {
	case core.InsertDown:
		return g.insertDownOutputs(n)
	case core.InsertRight:
		return g.insertRightOutputs(n)
	default:
		return g.diagOutputs(n)
	}
}

func (g *ExtendedGapGraph) inputsFor(n core.Node) []core.Edge {
	switch n.Depth {
	case core.InsertDown:
		return g.insertDownInputs(n)
	case core.InsertRight:
		return g.insertRightInputs(n)
	default:
		return g.diagInputs(n)
	}
}

// Nodes enumerates every node of all three planes in down-major,
// right-minor order; within a cell, InsertDown and InsertRight come before
// Diagonal, since a gap-close edge feeds the Diagonal slot from the same
// cell's insert planes and both must already be settled when Diagonal is
// relaxed.
func (g *ExtendedGapGraph) Nodes() iter.Seq[core.Node] {
	return func(yield func(core.Node) bool) {
		for d := 0; d < g.downCnt; d++ {
			for r := 0; r < g.rightCnt; r++ {
				if d >= 1 && !yield((core.Node{Down: d, Right: r, Depth: core.InsertDown})) {
					return
				}
				if r >= 1 && !yield((core.Node{Down: d, Right: r, Depth: core.InsertRight})) {
					return
				}
				if !yield(core.Node{Down: d, Right: r, Depth: core.Diagonal}) {
					return
				}
			}
		}
	}
}

// Edges enumerates every transition across all three planes.
func (g *ExtendedGapGraph) Edges() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for n := range g.Nodes() {
			for _, e := range g.outputsFor(n) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Inputs enumerates n's incoming edges.
func (g *ExtendedGapGraph) Inputs(n core.Node) iter.Seq[core.Edge] { return sliceSeq(g.inputsFor(n)) }

// Outputs enumerates n's outgoing edges.
func (g *ExtendedGapGraph) Outputs(n core.Node) iter.Seq[core.Edge] {
	return sliceSeq(g.outputsFor(n))
}

// InDegree returns the number of n's incoming edges.
func (g *ExtendedGapGraph) InDegree(n core.Node) int { return len(g.inputsFor(n)) }

// OutDegree returns the number of n's outgoing edges.
func (g *ExtendedGapGraph) OutDegree(n core.Node) int { return len(g.outputsFor(n)) }

// EdgeWeight resolves e's weight: Diag uses the substitution scorer,
// Open/Extend use the gap-open/gap-extend scorer, Close uses the
// gap-close scorer with both element options absent.
func (g *ExtendedGapGraph) EdgeWeight(e core.Edge) core.Weight {
	off := e.Offsets()
	down := elem(g.v, off.HasDown, off.Down)
	right := elem(g.w, off.HasRight, off.Right)
	switch e.Move {
	case core.Diag:
		return g.substScore(e, down, right)
	case core.OpenDown, core.OpenRight:
		return g.gapOpen(e, down, right)
	case core.ExtendDown, core.ExtendRight:
		return g.gapExtend(e, down, right)
	default: // CloseDown, CloseRight
		return g.gapClose(e, down, right)
	}
}

// RowNodes enumerates row `down`'s nodes left-to-right, depth-minor: for
// each column, InsertDown then InsertRight then Diagonal, matching the
// per-cell settling order Nodes uses for the same reason.
func (g *ExtendedGapGraph) RowNodes(down int) iter.Seq[core.Node] {
	return func(yield func(core.Node) bool) {
		if down < 0 || down >= g.downCnt {
			return
		}
		for r := 0; r < g.rightCnt; r++ {
			if down >= 1 && !yield(core.Node{Down: down, Right: r, Depth: core.InsertDown}) {
				return
			}
			if r >= 1 && !yield(core.Node{Down: down, Right: r, Depth: core.InsertRight}) {
				return
			}
			if !yield(core.Node{Down: down, Right: r, Depth: core.Diagonal}) {
				return
			}
		}
	}
}

// Residents returns {root, leaf} for interface uniformity; neither
// participates in a long-distance free-ride here, so the segmenter
// degenerates to a single real segment for this flavor.
func (g *ExtendedGapGraph) Residents() []core.Node {
	return []core.Node{g.Root(), g.Leaf()}
}

// OutputsToResidents is always empty: close transitions are local to a
// single grid cell and are reached through ordinary Outputs.
func (g *ExtendedGapGraph) OutputsToResidents(core.Node) []core.Edge { return nil }

// InputsFromResidents is always empty: open transitions originate from the
// Diagonal plane at the same or an adjacent cell and are reached through
// ordinary Inputs.
func (g *ExtendedGapGraph) InputsFromResidents(core.Node) []core.Edge { return nil }

// DepthCount reports the three planes this flavor spans.
func (g *ExtendedGapGraph) DepthCount() int { return 3 }

var _ Graph = (*ExtendedGapGraph)(nil)
