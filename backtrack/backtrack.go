package backtrack

import (
	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
)

// Run performs a single forward pass over g's nodes in topological order,
// relaxing into a SlotTable every outgoing edge (Outputs) and every
// incoming edge out of a resident (InputsFromResidents, which carries the
// root's free-rides that Outputs(root) does not list), then reconstructs
// the maximum-weight root-to-leaf path by walking the settled slots
// backward from the leaf.
func Run(g dag.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	root, leaf := g.Root(), g.Leaf()
	table := NewSlotTable(root, g.DownCount(), g.RightCount(), g.DepthCount())
	table.Set(root, core.Slot{Edge: core.NoEdge, Weight: 0})

	for n := range g.Nodes() {
		for _, e := range g.InputsFromResidents(n) {
			if src := table.Get(e.Source); src.Weight != core.NegInf {
				table.Relax(n, e, src.Weight+g.EdgeWeight(e))
			}
		}
		slot := table.Get(n)
		if slot.Weight == core.NegInf {
			continue
		}
		for e := range g.Outputs(n) {
			table.Relax(e.Destination, e, slot.Weight+g.EdgeWeight(e))
		}
	}

	leafSlot := table.Get(leaf)
	if leafSlot.Weight == core.NegInf {
		return Result{}, ErrNoPath
	}

	path := make([]core.Edge, 0, dag.MaxPathEdgeCount(g.DownCount(), g.RightCount()))
	for n := leaf; n != root; {
		edge, ok := table.Get(n).Edge.Unpack()
		if !ok {
			return Result{}, ErrNoPath
		}
		path = append(path, edge)
		n = edge.Source
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Weight: leafSlot.Weight}, nil
}
