package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// sliceView is the bounded-subgraph view returned by MiddleSlice: every
// Graph operation is delegated to the wrapped graph but filtered to nodes
// n satisfying from <= n <= to componentwise. Free-ride edges survive the
// filter only when both endpoints remain inside the bound.
type sliceView struct {
	inner    Graph
	from, to core.Node
}

// MiddleSlice restricts g to the subgraph bounded by from and to,
// inclusive on both ends. Used by the sliced subdivider to recurse into
// half of a segment without re-deriving a whole new graph.
func MiddleSlice(g Graph, from, to core.Node) Graph {
	return &sliceView{inner: g, from: from, to: to}
}

// within bounds Down and Right to the slice's endpoints but leaves Depth
// unconstrained across the wrapped graph's full plane range: from and to
// may sit on any plane (§3's Root/Leaf are always depth 0, but package
// subdivide also bounds slices at the InsertDown/InsertRight nodes its
// bisection picks), and clamping Depth to [from.Depth, to.Depth] would
// hide planes an affine-gap path inside the segment passes through.
func (s *sliceView) within(n core.Node) bool {
	return n.Depth < core.Layer(s.inner.DepthCount()) &&
		n.Down >= s.from.Down && n.Down <= s.to.Down &&
		n.Right >= s.from.Right && n.Right <= s.to.Right
}

// Root returns the slice's lower bound.
func (s *sliceView) Root() core.Node { return s.from }

// Leaf returns the slice's upper bound.
func (s *sliceView) Leaf() core.Node { return s.to }

// HasNode reports whether n is both valid in the wrapped graph and inside
// the slice's bound.
func (s *sliceView) HasNode(n core.Node) bool { return s.within(n) && s.inner.HasNode(n) }

// HasEdge reports whether e is a valid edge of the wrapped graph with
// both endpoints inside the slice's bound.
func (s *sliceView) HasEdge(e core.Edge) bool {
	return s.within(e.Source) && s.within(e.Destination) && s.inner.HasEdge(e)
}

// Nodes enumerates the wrapped graph's nodes that fall inside the bound.
func (s *sliceView) Nodes() iter.Seq[core.Node] {
	return func(yield func(core.Node) bool) {
		for n := range s.inner.Nodes() {
			if s.within(n) && !yield(n) {
				return
			}
		}
	}
}

// Edges enumerates the wrapped graph's edges whose endpoints both fall
// inside the bound.
func (s *sliceView) Edges() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for e := range s.inner.Edges() {
			if s.within(e.Source) && s.within(e.Destination) && !yield(e) {
				return
			}
		}
	}
}

// Inputs enumerates n's incoming edges whose source falls inside the
// bound.
func (s *sliceView) Inputs(n core.Node) iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for e := range s.inner.Inputs(n) {
			if s.within(e.Source) && !yield(e) {
				return
			}
		}
	}
}

// Outputs enumerates n's outgoing edges whose destination falls inside
// the bound.
func (s *sliceView) Outputs(n core.Node) iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for e := range s.inner.Outputs(n) {
			if s.within(e.Destination) && !yield(e) {
				return
			}
		}
	}
}

// InDegree counts n's incoming edges whose source falls inside the bound.
func (s *sliceView) InDegree(n core.Node) int {
	c := 0
	for e := range s.Inputs(n) {
		_ = e
		c++
	}
	return c
}

// OutDegree counts n's outgoing edges whose destination falls inside the
// bound.
func (s *sliceView) OutDegree(n core.Node) int {
	c := 0
	for e := range s.Outputs(n) {
		_ = e
		c++
	}
	return c
}

// EdgeWeight delegates to the wrapped graph; weight resolution doesn't
// depend on the bound.
func (s *sliceView) EdgeWeight(e core.Edge) core.Weight { return s.inner.EdgeWeight(e) }

// RowNodes enumerates the slice-local row `down`'s nodes that fall inside
// the bound. `down` is relative to the slice (0 is the row holding
// s.from), the same convention package walker's streaming walkers use for
// any Graph, so it is translated to the wrapped graph's absolute row
// before delegating.
func (s *sliceView) RowNodes(down int) iter.Seq[core.Node] {
	return func(yield func(core.Node) bool) {
		for n := range s.inner.RowNodes(down + s.from.Down) {
			if s.within(n) && !yield(n) {
				return
			}
		}
	}
}

// Residents returns the wrapped graph's residents that fall inside the
// bound.
func (s *sliceView) Residents() []core.Node {
	var out []core.Node
	for _, n := range s.inner.Residents() {
		if s.within(n) {
			out = append(out, n)
		}
	}
	return out
}

// OutputsToResidents returns n's resident-bound outgoing edges whose
// destination falls inside the bound.
func (s *sliceView) OutputsToResidents(n core.Node) []core.Edge {
	var out []core.Edge
	for _, e := range s.inner.OutputsToResidents(n) {
		if s.within(e.Destination) {
			out = append(out, e)
		}
	}
	return out
}

// InputsFromResidents returns n's resident-bound incoming edges whose
// source falls inside the bound.
func (s *sliceView) InputsFromResidents(n core.Node) []core.Edge {
	var out []core.Edge
	for _, e := range s.inner.InputsFromResidents(n) {
		if s.within(e.Source) {
			out = append(out, e)
		}
	}
	return out
}

// DownCount returns the slice's span in the down dimension.
func (s *sliceView) DownCount() int { return s.to.Down - s.from.Down + 1 }

// RightCount returns the slice's span in the right dimension.
func (s *sliceView) RightCount() int { return s.to.Right - s.from.Right + 1 }

// DepthCount returns the wrapped graph's full plane count: a slice never
// narrows the depth dimension, only Down and Right, whichever planes
// from/to sit on.
func (s *sliceView) DepthCount() int { return s.inner.DepthCount() }

var _ Graph = (*sliceView)(nil)
