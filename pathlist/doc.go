// Package pathlist implements the path container (C10): a doubly-linked
// list of edges that can be grown out of order around an anchor. No other
// package in this module builds its paths with it; package subdivide
// concatenates edge slices instead. Edges are never removed once inserted, only prepended or appended around
// an existing anchor, so the container is backed by a flat growable arena
// of nodes rather than individually heap-allocated, pointer-chased cells.
package pathlist
