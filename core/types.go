package core

// Layer distinguishes the three planes of the extended-gap
// graph. Single-layer flavors (global, local, fitting, overlap) only ever
// use Diagonal; the layer component of their Node is always zero.
type Layer uint8

const (
	// Diagonal is the match/mismatch plane, and the only plane used by the
	// four single-layer flavors.
	Diagonal Layer = iota
	// InsertDown is the plane for an open-or-extended gap in the down
	// (v) sequence.
	InsertDown
	// InsertRight is the plane for an open-or-extended gap in the right
	// (w) sequence.
	InsertRight
)

// String renders a Layer for debugging and test failure messages.
func (l Layer) String() string {
	switch l {
	case Diagonal:
		return "diagonal"
	case InsertDown:
		return "insert-down"
	case InsertRight:
		return "insert-right"
	default:
		return "layer(?)"
	}
}

// Node identifies a position in an alignment graph: a grid offset plus,
// for the three-plane extended-gap flavor, a Layer. Single-layer flavors
// always leave Depth at its zero value (Diagonal).
//
// Nodes order down-major, right-minor, and — within one cell — depth-minor
// with Diagonal last: InsertDown and InsertRight settle before Diagonal,
// since a gap-close edge feeds Diagonal's slot from the same cell's insert
// planes. This is also the order the backtracker and walkers process nodes
// in, since it is the only linear order under which every edge's source
// settles before its destination.
type Node struct {
	Down, Right int
	Depth       Layer
}

// depthRank orders a Layer for Less: InsertDown and InsertRight before
// Diagonal, since Diagonal is reached from them via a same-cell gap-close
// edge.
func (l Layer) depthRank() int {
	if l == Diagonal {
		return int(InsertRight) + 1
	}
	return int(l)
}

// Less reports whether n sorts strictly before o in topological order.
func (n Node) Less(o Node) bool {
	if n.Down != o.Down {
		return n.Down < o.Down
	}
	if n.Right != o.Right {
		return n.Right < o.Right
	}
	return n.Depth.depthRank() < o.Depth.depthRank()
}

// EdgeKind classifies an Edge's transition semantics.
type EdgeKind uint8

const (
	// Normal is any ordinary diagonal, down-gap, right-gap, gap-open or
	// gap-extend transition between adjacent grid cells.
	Normal EdgeKind = iota
	// FreeRide is a zero-element-consuming edge: a local/fitting/overlap
	// shortcut out of the root or into the leaf, or an extended-gap
	// gap-close back onto the same cell's Diagonal node.
	FreeRide
)

// String renders an EdgeKind for debugging.
func (k EdgeKind) String() string {
	if k == FreeRide {
		return "free-ride"
	}
	return "normal"
}

// Transition further distinguishes Normal edges by the move they encode.
// Single-layer flavors only ever produce Diag/GapDown/GapRight; the
// extended-gap flavor additionally produces the Open/Extend/Close variants.
type Transition uint8

const (
	// Diag consumes one element from both sequences.
	Diag Transition = iota
	// GapDown consumes one element from the down (v) sequence only.
	GapDown
	// GapRight consumes one element from the right (w) sequence only.
	GapRight
	// OpenDown transitions Diagonal -> InsertDown, consuming one down
	// element (the gap's first base).
	OpenDown
	// OpenRight transitions Diagonal -> InsertRight, consuming one right
	// element.
	OpenRight
	// ExtendDown consumes one down element while staying in InsertDown.
	ExtendDown
	// ExtendRight consumes one right element while staying in InsertRight.
	ExtendRight
	// CloseDown transitions InsertDown -> Diagonal at the same grid cell,
	// consuming nothing.
	CloseDown
	// CloseRight transitions InsertRight -> Diagonal at the same grid cell,
	// consuming nothing.
	CloseRight
)

// Edge identifies a directed transition between two Nodes.
type Edge struct {
	Source, Destination Node
	Kind                 EdgeKind
	Move                 Transition
}

// Less gives Edge the same strict ordering as its two endpoints.
func (e Edge) Less(o Edge) bool {
	if e.Source != o.Source {
		return e.Source.Less(o.Source)
	}
	return e.Destination.Less(o.Destination)
}

// ElementOffsets reports, for an edge's source/destination pair, the
// optional zero-based index into the down sequence and the right sequence
// that the edge consumes. Exactly one of four shapes holds: both present
// (diagonal-consuming), only down, only right, or neither (free-ride,
// gap-close).
type ElementOffsets struct {
	Down, Right   int
	HasDown       bool
	HasRight      bool
}

// Offsets computes the ElementOffsets for e given its Kind and Move. A
// FreeRide edge consumes nothing, whatever its Move. Otherwise the offset
// into a sequence is the row/column of the edge's *source* on the side
// that advances — i.e. the index of the element the transition consumes.
func (e Edge) Offsets() ElementOffsets {
	if e.Kind == FreeRide {
		return ElementOffsets{}
	}
	switch e.Move {
	case Diag:
		return ElementOffsets{Down: e.Source.Down, HasDown: true, Right: e.Source.Right, HasRight: true}
	case GapDown, ExtendDown, OpenDown:
		return ElementOffsets{Down: e.Source.Down, HasDown: true}
	case GapRight, ExtendRight, OpenRight:
		return ElementOffsets{Right: e.Source.Right, HasRight: true}
	default: // CloseDown, CloseRight, and free-rides
		return ElementOffsets{}
	}
}
