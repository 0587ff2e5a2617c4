package segment

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/walker"
)

// Compute runs a full forward and a full backward walk over g concurrently
// and segments the globally optimal root-to-leaf path into an alternating
// [optional entry Hop, Segment, optional exit Hop] sequence.
//
// The entry node is the first non-root resident, in ascending node order,
// for which a root-to-resident free-ride exists and backward_slot(resident)
// plus that free-ride's weight matches the global optimum within epsilon;
// absent such a resident, entry is the root itself and no entry Hop is
// emitted. The exit node is found symmetrically on the leaf side. For a
// flavor whose residents are only {root, leaf} with no direct root-leaf
// free-ride edge (extended-gap, and ordinarily fitting and overlap), this
// always degenerates to the single segment [root, leaf].
func Compute(ctx context.Context, g dag.Graph, epsilon float64) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	grp, _ := errgroup.WithContext(ctx)
	var fwd *walker.Forward
	var bwd *walker.Backward
	grp.Go(func() error {
		f, err := walker.NewForward(g)
		if err != nil {
			return err
		}
		if err := f.AdvanceThroughRow(g.DownCount() - 1); err != nil {
			return err
		}
		fwd = f
		return nil
	})
	grp.Go(func() error {
		b, err := walker.NewBackward(g)
		if err != nil {
			return err
		}
		if err := b.AdvanceThroughRow(0); err != nil {
			return err
		}
		bwd = b
		return nil
	})
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	root, leaf := g.Root(), g.Leaf()
	leafSlot, err := fwd.Slot(leaf)
	if err != nil {
		return Result{}, err
	}
	global := leafSlot.Weight

	residents := sortedResidents(g.Residents())

	entry, entryEdge, hasEntryHop := root, core.Edge{}, false
	for _, r := range residents {
		if r == root {
			continue
		}
		edge := core.Edge{Source: root, Destination: r, Kind: core.FreeRide}
		if !g.HasEdge(edge) {
			continue
		}
		bs, err := bwd.Slot(r)
		if err != nil {
			continue
		}
		if withinEpsilon(bs.Weight+g.EdgeWeight(edge), global, epsilon) {
			entry, entryEdge, hasEntryHop = r, edge, true
			break
		}
	}

	exit, exitEdge, hasExitHop := leaf, core.Edge{}, false
	for _, r := range residents {
		if r == leaf {
			continue
		}
		edge := core.Edge{Source: r, Destination: leaf, Kind: core.FreeRide}
		if !g.HasEdge(edge) {
			continue
		}
		fs, err := fwd.Slot(r)
		if err != nil {
			continue
		}
		if withinEpsilon(fs.Weight+g.EdgeWeight(edge), global, epsilon) {
			exit, exitEdge, hasExitHop = r, edge, true
			break
		}
	}

	var parts []Part
	switch {
	case hasEntryHop && entry == leaf:
		// the entry hop alone reaches leaf: the whole alignment is the
		// trivial root-to-leaf skip, with no real segment in between.
		parts = []Part{{Kind: HopPart, Edge: entryEdge}}
	default:
		parts = make([]Part, 0, 3)
		if hasEntryHop {
			parts = append(parts, Part{Kind: HopPart, Edge: entryEdge})
		}
		parts = append(parts, Part{Kind: SegmentPart, From: entry, To: exit})
		if hasExitHop {
			parts = append(parts, Part{Kind: HopPart, Edge: exitEdge})
		}
	}

	return Result{Weight: global, Parts: parts}, nil
}

func sortedResidents(in []core.Node) []core.Node {
	out := make([]core.Node, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func withinEpsilon(a, b core.Weight, epsilon float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return float64(d) <= epsilon
}
