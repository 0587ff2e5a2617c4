package core

// PackedEdge is a packed-optional Edge: a slot
// table entry holds one of these instead of a separate (Edge, bool) pair.
// Node's zero value (Down:0, Right:0, Depth:Diagonal) is a legitimate root
// node, so we cannot reuse a sentinel Node value; instead we carry an
// explicit present flag, keeping the struct trivially comparable and
// cheap to zero-initialize in a freshly allocated slot table.
type PackedEdge struct {
	edge    Edge
	present bool
}

// PackEdge wraps e as a present PackedEdge.
func PackEdge(e Edge) PackedEdge { return PackedEdge{edge: e, present: true} }

// NoEdge is the empty PackedEdge, meaning "no predecessor chosen yet".
var NoEdge = PackedEdge{}

// Unpack returns the wrapped Edge and whether one is present.
func (p PackedEdge) Unpack() (Edge, bool) { return p.edge, p.present }

// Slot is the per-node backtracking state: the best
// incoming (or, for a backward walker, outgoing) edge together with the
// accumulated weight of the best path through it.
type Slot struct {
	Edge   PackedEdge
	Weight Weight
}

// UnsetSlot is the initial value for any node that has not yet been
// reached: no predecessor and -Inf weight, so it cannot win a max
// comparison against any real path.
var UnsetSlot = Slot{Edge: NoEdge, Weight: NegInf}
