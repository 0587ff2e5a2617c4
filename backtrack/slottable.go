package backtrack

import "github.com/katalvlaran/palign/core"

// SlotTable is a dense, grid-indexed array of core.Slot, one per node of a
// graph of the given dimensions. Indexing is row-major within each depth
// plane: depth*downCnt*rightCnt + down*rightCnt + right, with down and
// right relative to an origin node so a bounded subgraph (package dag's
// MiddleSlice, whose Root isn't necessarily (0,0)) indexes densely from
// zero rather than leaving a sparse gap the size of its offset from the
// full grid's origin. Depth is the node's own plane index, not relative
// to the origin's, since a slice keeps every plane even when its root
// sits on an insert plane. Single-layer flavors pass depthCnt=1 and every
// node's Depth is core.Diagonal (0).
type SlotTable struct {
	origin                      core.Node
	downCnt, rightCnt, depthCnt int
	slots                       []core.Slot
}

// NewSlotTable allocates a SlotTable sized for a downCnt x rightCnt x
// depthCnt grid anchored at origin, every slot initialized to
// core.UnsetSlot.
func NewSlotTable(origin core.Node, downCnt, rightCnt, depthCnt int) *SlotTable {
	t := &SlotTable{origin: origin, downCnt: downCnt, rightCnt: rightCnt, depthCnt: depthCnt}
	t.slots = make([]core.Slot, downCnt*rightCnt*depthCnt)
	for i := range t.slots {
		t.slots[i] = core.UnsetSlot
	}
	return t
}

func (t *SlotTable) index(n core.Node) int {
	d := n.Down - t.origin.Down
	r := n.Right - t.origin.Right
	l := int(n.Depth)
	return l*t.downCnt*t.rightCnt + d*t.rightCnt + r
}

// Get returns n's current slot.
func (t *SlotTable) Get(n core.Node) core.Slot { return t.slots[t.index(n)] }

// Set overwrites n's slot.
func (t *SlotTable) Set(n core.Node, s core.Slot) { t.slots[t.index(n)] = s }

// Relax updates n's slot to (via, weight) if weight improves on n's
// current slot weight, reporting whether it did.
func (t *SlotTable) Relax(n core.Node, via core.Edge, weight core.Weight) bool {
	i := t.index(n)
	if weight <= t.slots[i].Weight {
		return false
	}
	t.slots[i] = core.Slot{Edge: core.PackEdge(via), Weight: weight}
	return true
}
