// Package segment implements the resident segmenter (C8): given a graph's
// two fixed resident endpoints, it determines whether the globally optimal
// root-to-leaf path enters or exits via a direct resident-to-resident
// free-ride (a whole-alignment skip) rather than the ordinary grid walk,
// and reports the result as an alternating list of Hop and Segment parts.
//
// Ordinary free-rides that land on an undeclared (non-resident) interior
// node — the common case for local/fitting/overlap alignment, which skips
// an arbitrary mismatched prefix or suffix — need no special handling
// here: they are ordinary edges in the graph's Inputs/Outputs, recovered
// transparently by package subdivide's normal path reconstruction. This
// package only detects the degenerate case where the optimum bypasses the
// grid walk entirely.
package segment
