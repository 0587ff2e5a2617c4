package dag

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// grid holds the dimensions, sequences and substitution/gap scorers shared
// by every single-layer flavor (global, local, fitting, overlap), plus the
// "normal edge" enumeration (diagonal, down-gap, right-gap) common to all
// four. Each flavor embeds grid and layers its own resident set and
// free-ride edges on top.
type grid struct {
	v, w       core.Sequence
	downCnt    int
	rightCnt   int
	substScore core.Scorer
	gapScore   core.Scorer
}

func newGrid(v, w core.Sequence, subst, gapS core.Scorer) (grid, error) {
	if v == nil || w == nil {
		return grid{}, ErrNilSequence
	}
	if subst == nil || gapS == nil {
		return grid{}, ErrNilScorer
	}
	return grid{
		v: v, w: w,
		downCnt:    v.Len() + 1,
		rightCnt:   w.Len() + 1,
		substScore: subst,
		gapScore:   gapS,
	}, nil
}

func (g grid) DownCount() int  { return g.downCnt }
func (g grid) RightCount() int { return g.rightCnt }
func (g grid) DepthCount() int { return 1 }

func (g grid) hasNode(n core.Node) bool {
	return n.Depth == core.Diagonal && inBounds1Layer(g.downCnt, g.rightCnt, n.Down, n.Right)
}

// normalOutputs returns n's outgoing diagonal/down-gap/right-gap edges, at
// most three, in the fixed order (diag, down-gap, right-gap).
func (g grid) normalOutputs(n core.Node) []core.Edge {
	out := make([]core.Edge, 0, 3)
	if n.Down+1 < g.downCnt && n.Right+1 < g.rightCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down + 1, Right: n.Right + 1}, Move: core.Diag})
	}
	if n.Down+1 < g.downCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down + 1, Right: n.Right}, Move: core.GapDown})
	}
	if n.Right+1 < g.rightCnt {
		out = append(out, core.Edge{Source: n, Destination: core.Node{Down: n.Down, Right: n.Right + 1}, Move: core.GapRight})
	}
	return out
}

// normalInputs returns n's incoming diagonal/down-gap/right-gap edges, at
// most three, in the fixed order (diag, down-gap, right-gap).
func (g grid) normalInputs(n core.Node) []core.Edge {
	in := make([]core.Edge, 0, 3)
	if n.Down-1 >= 0 && n.Right-1 >= 0 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down - 1, Right: n.Right - 1}, Destination: n, Move: core.Diag})
	}
	if n.Down-1 >= 0 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down - 1, Right: n.Right}, Destination: n, Move: core.GapDown})
	}
	if n.Right-1 >= 0 {
		in = append(in, core.Edge{Source: core.Node{Down: n.Down, Right: n.Right - 1}, Destination: n, Move: core.GapRight})
	}
	return in
}

func (g grid) nodesSeq() iter.Seq[core.Node] {
	return func(yield func(core.Node) bool) {
		for d := 0; d < g.downCnt; d++ {
			for r := 0; r < g.rightCnt; r++ {
				if !yield((core.Node{Down: d, Right: r})) {
					return
				}
			}
		}
	}
}

func (g grid) rowNodesSeq(down int) iter.Seq[core.Node] {
	return func(yield func(core.Node) bool) {
		if down < 0 || down >= g.downCnt {
			return
		}
		for r := 0; r < g.rightCnt; r++ {
			if !yield(core.Node{Down: down, Right: r}) {
				return
			}
		}
	}
}

func (g grid) normalEdgesSeq() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for n := range g.nodesSeq() {
			for _, e := range g.normalOutputs(n) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// edgeWeight resolves e's consumed elements against v/w and calls the
// substitution scorer for a Diag move or the gap scorer for a GapDown /
// GapRight move. Flavors with additional transitions (free-rides) must
// special-case those before falling back to edgeWeight.
func (g grid) edgeWeight(e core.Edge) core.Weight {
	off := e.Offsets()
	down := elem(g.v, off.HasDown, off.Down)
	right := elem(g.w, off.HasRight, off.Right)
	if e.Move == core.Diag {
		return g.substScore(e, down, right)
	}
	return g.gapScore(e, down, right)
}
