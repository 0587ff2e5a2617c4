package walker

import (
	"errors"

	"github.com/katalvlaran/palign/core"
)

// Sentinel errors returned by the walkers in this package.
var (
	// ErrNilGraph indicates a nil dag.Graph was passed to a constructor.
	ErrNilGraph = errors.New("walker: graph is nil")

	// ErrWalkExhausted indicates a walker's AdvanceThroughRow was asked
	// to reach a row past the end of the walk.
	ErrWalkExhausted = errors.New("walker: walk exhausted before reaching target row")

	// ErrInvalidRow indicates a negative or out-of-range row index.
	ErrInvalidRow = errors.New("walker: row index out of range")

	// ErrNodeNotInWindow indicates Slot was asked about a node that is
	// neither a resident nor inside the walker's current two-row window.
	ErrNodeNotInWindow = errors.New("walker: node outside the current window")

	// ErrPoolClosed indicates ConvergeOn could not submit a sweep because
	// the pool has already been closed.
	ErrPoolClosed = errors.New("walker: pool closed")
)

// residentTable tracks the fixed, small set of resident nodes a graph
// declares (e.g. {root, leaf} for local/fitting/overlap/extended-gap, or
// empty for global). Every resident starts unset; forward and backward
// walkers relax it independently as they sweep rows.
type residentTable struct {
	slots map[core.Node]core.Slot
}

func newResidentTable(residents []core.Node) *residentTable {
	t := &residentTable{slots: make(map[core.Node]core.Slot, len(residents))}
	for _, r := range residents {
		t.slots[r] = core.UnsetSlot
	}
	return t
}

func (t *residentTable) has(n core.Node) bool {
	_, ok := t.slots[n]
	return ok
}

func (t *residentTable) get(n core.Node) (core.Slot, bool) {
	s, ok := t.slots[n]
	return s, ok
}

func (t *residentTable) set(n core.Node, s core.Slot) { t.slots[n] = s }

// relax updates n's resident slot to (via, weight) if it improves on the
// current value. n must already be a declared resident.
func (t *residentTable) relax(n core.Node, via core.Edge, weight core.Weight) bool {
	cur := t.slots[n]
	if weight <= cur.Weight {
		return false
	}
	t.slots[n] = core.Slot{Edge: core.PackEdge(via), Weight: weight}
	return true
}

// rowSlots holds one row's worth of slots, keyed by node since a row's
// node count varies by flavor (one entry per (right) for single-layer
// graphs, up to three per (right) for the extended-gap graph).
type rowSlots struct {
	down  int
	slots map[core.Node]core.Slot
}

func newRowSlots(down int) *rowSlots {
	return &rowSlots{down: down, slots: make(map[core.Node]core.Slot)}
}

func (r *rowSlots) get(n core.Node) (core.Slot, bool) {
	s, ok := r.slots[n]
	if !ok {
		return core.UnsetSlot, false
	}
	return s, true
}

func (r *rowSlots) set(n core.Node, s core.Slot) { r.slots[n] = s }
