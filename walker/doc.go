// Package walker implements the row-major streaming backtracking engines:
// a forward walker that sweeps down-major from the root, a backward walker
// that sweeps up from the leaf, and a bidirectional walker that runs one of
// each concurrently and converges at a chosen row.
//
// Unlike package backtrack's dense O(grid-area) slot table, a walker keeps
// only two adjacent rows of slots resident plus a small table for the
// graph's fixed resident set, making it the O(row-width) primitive package
// subdivide uses to recover a path in linear space.
package walker
