package align

import (
	"context"
	"fmt"

	"github.com/katalvlaran/palign/backtrack"
	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/subdivide"
)

// AlignGlobal computes a Needleman-Wunsch global alignment of v against w.
func AlignGlobal(ctx context.Context, v, w core.Sequence, subst, gap core.Scorer, opts ...Option) (Result, error) {
	if v == nil || w == nil {
		return Result{}, ErrNilSequence
	}
	g, err := dag.NewGlobalGraph(v, w, subst, gap)
	if err != nil {
		return Result{}, err
	}
	return run(ctx, g, resolveOptions(opts))
}

// AlignLocal computes a Smith-Waterman local alignment: the highest-scoring
// substring-to-substring match, entering and exiting the grid at any cell
// via a free-ride edge.
func AlignLocal(ctx context.Context, v, w core.Sequence, subst, gap, freeRide core.Scorer, opts ...Option) (Result, error) {
	if v == nil || w == nil {
		return Result{}, ErrNilSequence
	}
	g, err := dag.NewLocalGraph(v, w, subst, gap, freeRide)
	if err != nil {
		return Result{}, err
	}
	return run(ctx, g, resolveOptions(opts))
}

// AlignFitting computes a fitting alignment: w is aligned in full against
// the best-matching substring of v.
func AlignFitting(ctx context.Context, v, w core.Sequence, subst, gap, freeRide core.Scorer, opts ...Option) (Result, error) {
	if v == nil || w == nil {
		return Result{}, ErrNilSequence
	}
	g, err := dag.NewFittingGraph(v, w, subst, gap, freeRide)
	if err != nil {
		return Result{}, err
	}
	return run(ctx, g, resolveOptions(opts))
}

// AlignOverlap computes an overlap alignment: a suffix of v against a
// prefix of w (or vice versa), free-riding past whichever sequence's
// unaligned remainder lies outside the overlap.
func AlignOverlap(ctx context.Context, v, w core.Sequence, subst, gap, freeRide core.Scorer, opts ...Option) (Result, error) {
	if v == nil || w == nil {
		return Result{}, ErrNilSequence
	}
	g, err := dag.NewOverlapGraph(v, w, subst, gap, freeRide)
	if err != nil {
		return Result{}, err
	}
	return run(ctx, g, resolveOptions(opts))
}

// AlignExtendedGap computes a global alignment under the three-plane
// affine-gap model: gapOpen prices the first gap step, gapExtend prices
// every further step in the same run, and returning to the diagonal plane
// is free, matching scorer.DefaultAffine's convention.
func AlignExtendedGap(ctx context.Context, v, w core.Sequence, subst, gapOpen, gapExtend core.Scorer, opts ...Option) (Result, error) {
	if v == nil || w == nil {
		return Result{}, ErrNilSequence
	}
	g, err := dag.NewExtendedGapGraph(v, w, subst, gapOpen, gapExtend, scorer.FreeRide(0))
	if err != nil {
		return Result{}, err
	}
	return run(ctx, g, resolveOptions(opts))
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// run dispatches to the backend Options selects and, in Strict mode,
// re-scores the returned path as a self-check (testable property 5).
func run(ctx context.Context, g dag.Graph, cfg Options) (Result, error) {
	var res Result
	switch cfg.Backend {
	case Sliced:
		r, err := subdivide.RunWith(ctx, g, cfg.Workers, cfg.Epsilon)
		if err != nil {
			return Result{}, err
		}
		res = Result{Path: r.Path, Weight: r.Weight}
	default:
		r, err := backtrack.Run(g)
		if err != nil {
			return Result{}, err
		}
		res = Result{Path: r.Path, Weight: r.Weight}
	}

	if cfg.Strict {
		var sum core.Weight
		for _, e := range res.Path {
			sum += g.EdgeWeight(e)
		}
		if sum != res.Weight {
			panic(fmt.Errorf("%w: path sums to %v, backend reported %v", ErrStrictPathWeightMismatch, sum, res.Weight))
		}
	}
	return res, nil
}
