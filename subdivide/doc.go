// Package subdivide implements the sliced subdivider (C9): a recursive,
// Hirschberg-style reconstruction of the best root-to-leaf path that never
// materializes a dense O(downCnt*rightCnt) slot table for the whole graph.
// It combines package segment (to locate the top-level hops and the real
// segment between them), package walker's bidirectional convergence (to
// bisect a segment by row without discarding anything but two adjacent
// rows of state), and package dag's MiddleSlice (to bound recursion to the
// half being resolved). Once a segment spans one or two rows it falls back
// to package backtrack's dense pass, which is cheap at that width and
// avoids re-deriving the single-edge base case by hand.
package subdivide
