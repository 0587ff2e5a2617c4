// Package dag implements the alignment-graph family: one DAG type per
// alignment flavor (global, local, fitting, overlap, extended-gap), defined
// procedurally over a pair of core.Sequence values and their scorers.
//
// Nothing here ever materializes the full node or edge set. Every method
// that would naturally return a collection instead returns an iter.Seq —
// Go's standard range-over-func iterator — computed on demand from the
// requested node's grid coordinates, since grid sizes can reach millions of
// cells. Where a count is small and bounded (a diagonal node has at most
// three standard predecessors) the method instead returns a short concrete
// slice, avoiding iterator overhead on the hot path.
package dag
