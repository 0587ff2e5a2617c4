// Package core defines the central Node, Edge, Sequence and Scorer types
// shared by every other package in this module, plus the grid-dimension
// constants and packed-optional helpers that the backtracker and walkers
// build on.
//
// Values here are immutable once constructed: a Node and an Edge are plain
// comparable structs, so they can be used directly as map keys or slot-table
// indices without extra locking.
package core
