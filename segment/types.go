package segment

import (
	"errors"

	"github.com/katalvlaran/palign/core"
)

// ErrNilGraph is returned when Compute is called with a nil graph.
var ErrNilGraph = errors.New("segment: graph must not be nil")

// DefaultEpsilon is the tolerance used to decide whether a resident-to-
// resident free-ride ties the global optimum, absorbing floating-point
// rounding in accumulated scorer weights.
const DefaultEpsilon = 1e-9

// PartKind discriminates the two kinds of Part a segmenter emits.
type PartKind uint8

const (
	// SegmentPart marks a [From, To] range to be handed to the subdivider
	// for ordinary recursive path reconstruction.
	SegmentPart PartKind = iota
	// HopPart marks a single free-ride edge that bypasses the grid walk
	// entirely.
	HopPart
)

// Part is one element of a segmenter's result: either a Hop (a concrete
// resident-to-resident edge) or a Segment (a [From, To] range still to be
// resolved by the subdivider).
type Part struct {
	Kind PartKind
	Edge core.Edge // valid when Kind == HopPart
	From core.Node // valid when Kind == SegmentPart
	To   core.Node // valid when Kind == SegmentPart
}

// Result is a segmenter's output: the global best weight and the ordered
// parts an optimal root-to-leaf path decomposes into.
type Result struct {
	Weight core.Weight
	Parts  []Part
}
