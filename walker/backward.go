package walker

import (
	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
)

// Backward is the row-major streaming backward walker (C6): the dual of
// Forward, sweeping up-major from the leaf in reverse topological order. A
// node's slot holds the best weight of a node-to-leaf suffix path and the
// outgoing edge that achieves it.
type Backward struct {
	g          dag.Graph
	residents  *residentTable
	upper      *rowSlots // the row one index above curDown (not-yet-visited side)
	lower      *rowSlots // the row currently being filled
	pending    []core.Node
	pendingIdx int
	curDown    int
	exhausted  bool
}

// NewBackward constructs a Backward walker over g, seeding the leaf's slot
// to weight 0 and positioning the walk at the last row.
func NewBackward(g dag.Graph) (*Backward, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	b := &Backward{
		g:         g,
		residents: newResidentTable(g.Residents()),
		curDown:   g.DownCount() - 1,
	}
	b.lower = newRowSlots(b.curDown)
	b.pending = reverseCollect(g.RowNodes(b.curDown))

	leaf := g.Leaf()
	seed := core.Slot{Edge: core.NoEdge, Weight: 0}
	if b.residents.has(leaf) {
		b.residents.set(leaf, seed)
	} else {
		b.lower.set(leaf, seed)
	}
	return b, nil
}

// reverseCollect drains a row's nodes and reverses them, since the
// backward walker visits each row in the opposite order of Forward.
func reverseCollect(seq func(func(core.Node) bool)) []core.Node {
	out := collect(seq)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// StepBackward advances the walk by exactly one node, returning it, or
// reports false once row 0 has been fully visited.
func (b *Backward) StepBackward() (core.Node, bool) {
	if b.exhausted {
		return core.Node{}, false
	}
	for b.pendingIdx >= len(b.pending) {
		if !b.prevRow() {
			b.exhausted = true
			return core.Node{}, false
		}
	}
	n := b.pending[b.pendingIdx]
	b.pendingIdx++
	b.visit(n)
	return n, true
}

func (b *Backward) prevRow() bool {
	b.curDown--
	if b.curDown < 0 {
		return false
	}
	b.upper = b.lower
	b.lower = newRowSlots(b.curDown)
	b.pending = reverseCollect(b.g.RowNodes(b.curDown))
	b.pendingIdx = 0
	return true
}

// visit mirrors Forward.visit with inputs/outputs swapped: a node's slot
// is computed by examining its outputs (a resident keeps the better of
// that and the candidates already pushed into it), then any inputs
// sourced at a resident push a candidate into that resident's slot.
func (b *Backward) visit(n core.Node) {
	best := core.UnsetSlot
	for e := range b.g.Outputs(n) {
		s, ok := b.slotOf(e.Destination)
		if !ok || s.Weight == core.NegInf {
			continue
		}
		if cand := s.Weight + b.g.EdgeWeight(e); cand > best.Weight {
			best = core.Slot{Edge: core.PackEdge(e), Weight: cand}
		}
	}
	if b.residents.has(n) {
		if cur, _ := b.residents.get(n); best.Weight > cur.Weight {
			b.residents.set(n, best)
		}
	} else if cur, _ := b.lower.get(n); best.Weight > cur.Weight {
		b.lower.set(n, best)
	}

	curSlot, _ := b.slotOf(n)
	for _, e := range b.g.InputsFromResidents(n) {
		cand := curSlot.Weight + b.g.EdgeWeight(e)
		b.residents.relax(e.Source, e, cand)
	}
}

// slotOf resolves n's current slot: resident table, then the row being
// filled, then the row just above it (already settled). Rows are numbered
// from the graph's root row, so n.Down is taken relative to it.
func (b *Backward) slotOf(n core.Node) (core.Slot, bool) {
	if s, ok := b.residents.get(n); ok {
		return s, true
	}
	d := n.Down - b.g.Root().Down
	if b.lower != nil && d == b.lower.down {
		s, _ := b.lower.get(n)
		return s, true
	}
	if b.upper != nil && d == b.upper.down {
		s, _ := b.upper.get(n)
		return s, true
	}
	return core.UnsetSlot, false
}

// Slot returns n's current slot: valid for a resident at any point in the
// walk, or for a row node once the walk has reached its row.
func (b *Backward) Slot(n core.Node) (core.Slot, error) {
	s, ok := b.slotOf(n)
	if !ok {
		return core.Slot{}, ErrNodeNotInWindow
	}
	return s, nil
}

// Row reports the down-index of the row currently being filled.
func (b *Backward) Row() int { return b.curDown }

// AdvanceThroughRow steps the walk backward until row has been entirely
// visited.
func (b *Backward) AdvanceThroughRow(row int) error {
	if row < 0 {
		return ErrInvalidRow
	}
	for b.curDown > row || (b.curDown == row && b.pendingIdx < len(b.pending)) {
		if _, ok := b.StepBackward(); !ok {
			return ErrWalkExhausted
		}
	}
	return nil
}
