// Package palign (pairwise-align) is a from-scratch-DAG sequence aligner.
//
// 🚀 What is palign?
//
//	A zero-frills library that computes the maximum-weight alignment
//	between two sequences by walking a procedurally-defined alignment
//	graph — never materialized as an adjacency list — with:
//
//	  • Global, local, fitting and overlap alignment (Needleman-Wunsch /
//	    Smith-Waterman / semi-global family)
//	  • A three-plane extended (affine) gap variant
//	  • A dense O(|v|·|w|) backtracker for small inputs
//	  • A linear-space Hirschberg-style divide-and-conquer recovery path
//	    for large inputs, built on a bidirectional streaming walker
//
// ✨ Why choose palign?
//
//   - Graphs are computed on demand — no |v|×|w| edge list ever exists
//   - Deterministic: tie-breaking always favors the lexicographically
//     smaller node, so dense and sliced backends agree bit-for-bit on
//     total weight
//   - Pluggable scoring: substitution/gap/free-ride weights are caller
//     functions, not baked-in constants
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/       — Node, Edge, Sequence and Scorer contracts
//	seq/        — ready-made Sequence adapters for []byte and []rune
//	dag/        — the alignment-graph family (one type per flavor)
//	backtrack/  — the dense topological backtracker
//	walker/     — forward, backward and bidirectional streaming walkers
//	segment/    — resident segmentation (free-ride hop detection)
//	pathlist/   — the doubly-linked edge-path arena
//	subdivide/  — the Hirschberg-style sliced subdivider
//	workpool/   — the forkable work-stealing thread pool
//	scorer/     — ready-made scoring functions
//	align/      — the five public entry points (AlignGlobal, ...)
//
// See align's doc.go for the primary entry points and worked examples.
//
//	go get github.com/katalvlaran/palign
package palign
