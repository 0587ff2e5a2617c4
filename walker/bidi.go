package walker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/workpool"
)

// Bidi is the bidirectional walker (C7): a Forward walker advanced through
// a chosen mid row and a Backward walker advanced down to that same row,
// run concurrently. Find(node) on the result combines both halves to give
// the best weight of any root-to-leaf path through node.
type Bidi struct {
	g        dag.Graph
	mid      int
	forward  *Forward
	backward *Backward
}

// Converge builds a Bidi walker converged at row mid: the forward half
// sweeps from the root through row mid, the backward half sweeps from the
// leaf down to row mid, dispatched concurrently via errgroup.
func Converge(ctx context.Context, g dag.Graph, mid int) (*Bidi, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if mid < 0 || mid >= g.DownCount() {
		return nil, ErrInvalidRow
	}

	grp, _ := errgroup.WithContext(ctx)
	var fw *Forward
	var bw *Backward

	grp.Go(func() error {
		f, err := NewForward(g)
		if err != nil {
			return err
		}
		if err := f.AdvanceThroughRow(mid); err != nil {
			return err
		}
		fw = f
		return nil
	})
	grp.Go(func() error {
		b, err := NewBackward(g)
		if err != nil {
			return err
		}
		if err := b.AdvanceThroughRow(mid); err != nil {
			return err
		}
		bw = b
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &Bidi{g: g, mid: mid, forward: fw, backward: bw}, nil
}

// ConvergeOn builds a Bidi walker the same way Converge does, but submits
// the forward and backward sweeps as two tasks on pool instead of two
// errgroup goroutines, and joins them with workpool's forkable Join, which
// runs queued tasks on the calling goroutine while it waits. This is what
// package subdivide's recursive bisection uses.
func ConvergeOn(ctx context.Context, g dag.Graph, mid int, pool *workpool.Pool) (*Bidi, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if mid < 0 || mid >= g.DownCount() {
		return nil, ErrInvalidRow
	}

	fwFuture, ok := workpool.Fork(pool, func() (*Forward, error) {
		f, err := NewForward(g)
		if err != nil {
			return nil, err
		}
		if err := f.AdvanceThroughRow(mid); err != nil {
			return nil, err
		}
		return f, nil
	})
	if !ok {
		return nil, ErrPoolClosed
	}
	bwFuture, ok := workpool.Fork(pool, func() (*Backward, error) {
		b, err := NewBackward(g)
		if err != nil {
			return nil, err
		}
		if err := b.AdvanceThroughRow(mid); err != nil {
			return nil, err
		}
		return b, nil
	})
	if !ok {
		return nil, ErrPoolClosed
	}

	fw, err := workpool.Join(pool, fwFuture)
	if err != nil {
		return nil, err
	}
	bw, err := workpool.Join(pool, bwFuture)
	if err != nil {
		return nil, err
	}
	return &Bidi{g: g, mid: mid, forward: fw, backward: bw}, nil
}

// Row reports the row this walker converged at.
func (bd *Bidi) Row() int { return bd.mid }

// GlobalBestWeight returns the best weight of any root-to-leaf path,
// available once the walk has converged: the best ForwardSlot.Weight +
// BackwardSlot.Weight over the converged row, or a better path that skips
// that row through a free-ride into the forward walk's resident leaf or
// out of the backward walk's resident root.
func (bd *Bidi) GlobalBestWeight() (core.Weight, error) {
	best := core.NegInf
	if s, ok := bd.forward.residents.get(bd.g.Leaf()); ok && s.Weight > best {
		best = s.Weight
	}
	if s, ok := bd.backward.residents.get(bd.g.Root()); ok && s.Weight > best {
		best = s.Weight
	}
	for _, n := range bd.MidRowNodes() {
		fb, err := bd.Find(n)
		if err != nil {
			return 0, err
		}
		if sum := fb.ForwardSlot.Weight + fb.BackwardSlot.Weight; sum > best {
			best = sum
		}
	}
	return best, nil
}

// Find returns (forward_slot, backward_slot) for node, which must be a
// resident or a node of the converged row. The best weight of a
// root-to-leaf path through node is ForwardSlot.Weight +
// BackwardSlot.Weight, except at a resident where that sum double-counts
// the resident's own contribution — callers needing a resident's
// contribution-free combination should consult the resident slots
// directly via ForwardResident/BackwardResident instead.
type Find struct {
	ForwardSlot  core.Slot
	BackwardSlot core.Slot
}

// Find looks up node's combined slot pair.
func (bd *Bidi) Find(node core.Node) (Find, error) {
	fs, err := bd.forward.Slot(node)
	if err != nil {
		return Find{}, err
	}
	bs, err := bd.backward.Slot(node)
	if err != nil {
		return Find{}, err
	}
	return Find{ForwardSlot: fs, BackwardSlot: bs}, nil
}

// MidRowNodes returns the row this walker converged at, materialized so
// callers can scan it for the argmax node (package subdivide's use case).
func (bd *Bidi) MidRowNodes() []core.Node {
	return collect(bd.g.RowNodes(bd.mid))
}

// ForwardResident and BackwardResident expose the forward and backward
// resident tables: each resident's prefix-best and suffix-best slot over
// the rows its walk has visited, which package subdivide reads to find a
// best path that skips the converged row through a free-ride.
func (bd *Bidi) ForwardResident(n core.Node) (core.Slot, bool) { return bd.forward.residents.get(n) }
func (bd *Bidi) BackwardResident(n core.Node) (core.Slot, bool) {
	return bd.backward.residents.get(n)
}
