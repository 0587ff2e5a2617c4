package walker

import (
	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
)

// Forward is the row-major streaming forward walker (C5): it sweeps the
// graph down-major from the root, keeping two adjacent rows of slots plus
// a resident-slot table that survives the whole walk. A node's slot holds
// the best weight of a root-to-node path and the incoming edge that
// achieves it.
type Forward struct {
	g          dag.Graph
	residents  *residentTable
	upper      *rowSlots
	lower      *rowSlots
	pending    []core.Node
	pendingIdx int
	curDown    int
	exhausted  bool
}

// NewForward constructs a Forward walker over g, seeding the root's slot
// to weight 0 (whether or not the root happens to be a declared resident)
// and positioning the walk at row 0.
func NewForward(g dag.Graph) (*Forward, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	f := &Forward{
		g:         g,
		residents: newResidentTable(g.Residents()),
	}
	f.lower = newRowSlots(0)
	f.pending = collect(g.RowNodes(0))

	root := g.Root()
	seed := core.Slot{Edge: core.NoEdge, Weight: 0}
	if f.residents.has(root) {
		f.residents.set(root, seed)
	} else {
		f.lower.set(root, seed)
	}
	return f, nil
}

// collect drains an iter.Seq[core.Node] into a slice, materializing one
// row's nodes at a time (never the whole grid).
func collect(seq func(func(core.Node) bool)) []core.Node {
	var out []core.Node
	seq(func(n core.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// StepForward advances the walk by exactly one node, returning it, or
// reports false once every row has been visited.
func (f *Forward) StepForward() (core.Node, bool) {
	if f.exhausted {
		return core.Node{}, false
	}
	for f.pendingIdx >= len(f.pending) {
		if !f.nextRow() {
			f.exhausted = true
			return core.Node{}, false
		}
	}
	n := f.pending[f.pendingIdx]
	f.pendingIdx++
	f.visit(n)
	return n, true
}

func (f *Forward) nextRow() bool {
	f.curDown++
	if f.curDown >= f.g.DownCount() {
		return false
	}
	f.upper = f.lower
	f.lower = newRowSlots(f.curDown)
	f.pending = collect(f.g.RowNodes(f.curDown))
	f.pendingIdx = 0
	return true
}

// visit implements the per-node update: a node's slot is computed by
// examining its inputs (a resident keeps the better of that and the
// candidates already pushed into it); then any outputs landing on a
// resident push a candidate into that resident's slot.
func (f *Forward) visit(n core.Node) {
	best := core.UnsetSlot
	for e := range f.g.Inputs(n) {
		s, ok := f.slotOf(e.Source)
		if !ok || s.Weight == core.NegInf {
			continue
		}
		if cand := s.Weight + f.g.EdgeWeight(e); cand > best.Weight {
			best = core.Slot{Edge: core.PackEdge(e), Weight: cand}
		}
	}
	if f.residents.has(n) {
		if cur, _ := f.residents.get(n); best.Weight > cur.Weight {
			f.residents.set(n, best)
		}
	} else if cur, _ := f.lower.get(n); best.Weight > cur.Weight {
		f.lower.set(n, best)
	}

	curSlot, _ := f.slotOf(n)
	for _, e := range f.g.OutputsToResidents(n) {
		cand := curSlot.Weight + f.g.EdgeWeight(e)
		f.residents.relax(e.Destination, e, cand)
	}
}

// slotOf resolves n's current slot: the resident table takes priority,
// then the current (lower) row, then the previous (upper) row. Rows are
// numbered from the graph's root row, so n.Down is taken relative to it.
func (f *Forward) slotOf(n core.Node) (core.Slot, bool) {
	if s, ok := f.residents.get(n); ok {
		return s, true
	}
	d := n.Down - f.g.Root().Down
	if f.lower != nil && d == f.lower.down {
		s, _ := f.lower.get(n)
		return s, true
	}
	if f.upper != nil && d == f.upper.down {
		s, _ := f.upper.get(n)
		return s, true
	}
	return core.UnsetSlot, false
}

// Slot returns n's current slot: valid for a resident at any point in the
// walk, or for a row node once the walk has reached its row.
func (f *Forward) Slot(n core.Node) (core.Slot, error) {
	s, ok := f.slotOf(n)
	if !ok {
		return core.Slot{}, ErrNodeNotInWindow
	}
	return s, nil
}

// Row reports the down-index of the row currently being filled.
func (f *Forward) Row() int { return f.curDown }

// AdvanceThroughRow steps the walk until row has been entirely visited.
func (f *Forward) AdvanceThroughRow(row int) error {
	if row < 0 {
		return ErrInvalidRow
	}
	for f.curDown < row || (f.curDown == row && f.pendingIdx < len(f.pending)) {
		if _, ok := f.StepForward(); !ok {
			return ErrWalkExhausted
		}
	}
	return nil
}
