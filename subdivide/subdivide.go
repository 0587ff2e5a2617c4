package subdivide

import (
	"context"

	"github.com/katalvlaran/palign/backtrack"
	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/segment"
	"github.com/katalvlaran/palign/walker"
	"github.com/katalvlaran/palign/workpool"
)

// Run computes the best root-to-leaf path of g without ever holding a
// dense slot table over the whole grid, using hardware-concurrency workers
// and the segmenter's default epsilon. See RunWith for a configurable
// variant.
func Run(ctx context.Context, g dag.Graph) (Result, error) {
	return RunWith(ctx, g, 0, segment.DefaultEpsilon)
}

// RunWith is Run with the pool's worker count and the resident segmenter's
// tie-breaking epsilon exposed, for callers (package align's Sliced
// backend) that need to honor caller-supplied Options. It runs the
// resident segmenter once to split the path into hops and a real segment,
// then recursively bisects that segment by row via package walker's
// bidirectional convergence until each remaining slice is narrow enough to
// hand to backtrack's dense pass directly. Each bisection's forward and
// backward sweeps are submitted as two tasks on a shared work-stealing
// pool, which is torn down before RunWith returns.
func RunWith(ctx context.Context, g dag.Graph, workers int, epsilon float64) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	segResult, err := segment.Compute(ctx, g, epsilon)
	if err != nil {
		return Result{}, err
	}

	pool := workpool.New(workers)
	defer pool.Close()

	var path []core.Edge
	for _, part := range segResult.Parts {
		switch part.Kind {
		case segment.HopPart:
			path = append(path, part.Edge)
		case segment.SegmentPart:
			edges, err := subdivideSegment(ctx, g, part.From, part.To, pool)
			if err != nil {
				return Result{}, err
			}
			path = append(path, edges...)
		}
	}

	return Result{Path: path, Weight: segResult.Weight}, nil
}

// subdivideSegment returns the ordered edges of the best from-to-to path,
// restricted to the subgraph bounded by from and to.
func subdivideSegment(ctx context.Context, g dag.Graph, from, to core.Node, pool *workpool.Pool) ([]core.Edge, error) {
	if from == to {
		return nil, nil
	}
	if to.Down-from.Down <= 1 {
		return densePath(dag.MiddleSlice(g, from, to))
	}

	mid := (from.Down + to.Down) / 2
	bounded := dag.MiddleSlice(g, from, to)
	bd, err := walker.ConvergeOn(ctx, bounded, mid-from.Down, pool)
	if err != nil {
		return nil, err
	}

	best := to
	bestWeight := core.NegInf
	for _, n := range bd.MidRowNodes() {
		fb, err := bd.Find(n)
		if err != nil {
			return nil, err
		}
		// MidRowNodes is already ascending on node order, so keeping the
		// first node to reach a given weight is exactly the "smaller node
		// order wins ties" rule.
		if sum := fb.ForwardSlot.Weight + fb.BackwardSlot.Weight; sum > bestWeight {
			best, bestWeight = n, sum
		}
	}

	// A path that skips row mid entirely leaves from (a resident root)
	// through a free-ride below mid, or reaches to (a resident leaf)
	// through a free-ride above it; the resident slots hold that edge.
	fs, fok := bd.ForwardResident(to)
	bs, bok := bd.BackwardResident(from)
	if e, ok := bs.Edge.Unpack(); bok && ok && bs.Weight > bestWeight && (!fok || bs.Weight >= fs.Weight) {
		rest, err := subdivideSegment(ctx, g, e.Destination, to, pool)
		return append([]core.Edge{e}, rest...), err
	}
	if e, ok := fs.Edge.Unpack(); fok && ok && fs.Weight > bestWeight {
		head, err := subdivideSegment(ctx, g, from, e.Source, pool)
		return append(head, e), err
	}

	left, err := subdivideSegment(ctx, g, from, best, pool)
	if err != nil {
		return nil, err
	}
	right, err := subdivideSegment(ctx, g, best, to, pool)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// densePath runs the ordinary dense backtracker over a narrow (one- or
// two-row) bounded slice, cheap enough at that width to skip streaming.
func densePath(bounded dag.Graph) ([]core.Edge, error) {
	res, err := backtrack.Run(bounded)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}
