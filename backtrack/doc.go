// Package backtrack implements the dense topological backtracker: a single
// forward pass over a dag.Graph's nodes in (already-guaranteed)
// topological order, relaxing every outgoing edge and every free-ride out
// of a resident into a grid-indexed slot table and reconstructing the maximum-weight root-to-leaf path once the
// leaf's slot is settled.
//
// Complexity:
//
//   - Time:  O(V + E), one relaxation per edge, one slot write per node.
//   - Space: O(V), one core.Slot per node of the graph.
//
// This is the "small input" engine picked by package align; for grids too
// large to hold entirely in memory, align instead uses package subdivide's
// linear-space divide-and-conquer recovery over package walker's
// bidirectional streaming walk.
package backtrack
