package dag

import (
	"errors"
	"iter"

	"github.com/katalvlaran/palign/core"
)

// Sentinel errors for malformed graph construction.
var (
	// ErrNilSequence indicates a nil down or right sequence was passed to
	// a graph constructor.
	ErrNilSequence = errors.New("dag: sequence must not be nil")
	// ErrNilScorer indicates a required scorer function was nil.
	ErrNilScorer = errors.New("dag: scorer must not be nil")
)

// Graph is the common interface every alignment-graph flavor satisfies.
// Implementations are immutable value objects: once constructed from two
// borrowed sequences and their scorers, every method is a pure function of
// its arguments.
type Graph interface {
	// Root and Leaf return the graph's designated endpoints.
	Root() core.Node
	Leaf() core.Node

	// HasNode and HasEdge report whether a Node/Edge is valid for this
	// graph's dimensions and flavor.
	HasNode(n core.Node) bool
	HasEdge(e core.Edge) bool

	// Nodes enumerates every node in topological (lexicographic) order.
	Nodes() iter.Seq[core.Node]
	// Edges enumerates every edge; order is unspecified.
	Edges() iter.Seq[core.Edge]

	// Inputs and Outputs enumerate the edges incident to n, except that
	// in the free-ride flavors Outputs(root) lists no root->x free-ride
	// other than root->leaf (each is reached through
	// InputsFromResidents(x)) and Inputs(leaf) lists no x->leaf free-ride
	// other than root->leaf (each is reached through
	// OutputsToResidents(x)).
	Inputs(n core.Node) iter.Seq[core.Edge]
	Outputs(n core.Node) iter.Seq[core.Edge]
	InDegree(n core.Node) int
	OutDegree(n core.Node) int

	// EdgeWeight resolves e's element offsets against the graph's two
	// sequences and calls the appropriate scorer.
	EdgeWeight(e core.Edge) core.Weight

	// RowNodes enumerates one row's nodes in (right, depth) order, for
	// the streaming walkers in package walker.
	RowNodes(down int) iter.Seq[core.Node]

	// Residents returns the flavor's fixed resident-node set.
	Residents() []core.Node
	// OutputsToResidents and InputsFromResidents return n's free-ride
	// edges into / out of a resident. Normal edges whose other endpoint
	// is a resident are not included (they appear only in Inputs/
	// Outputs), and the extended-gap flavor returns none.
	OutputsToResidents(n core.Node) []core.Edge
	InputsFromResidents(n core.Node) []core.Edge

	// DownCount, RightCount and DepthCount give the grid dimensions this
	// graph was constructed over.
	DownCount() int
	RightCount() int
	DepthCount() int
}

// MaxPathEdgeCount returns the largest number of edges any root-to-leaf
// path can contain in a single-layer grid of the given dimensions: one
// step per row plus one step per column, since no edge ever advances both
// counters by more than one.
func MaxPathEdgeCount(downCnt, rightCnt int) int {
	return (downCnt - 1) + (rightCnt - 1)
}

// MaxSliceNodesCnt returns the largest number of nodes any single row of a
// single-layer grid can hold.
func MaxSliceNodesCnt(_, rightCnt int) int {
	return rightCnt
}

// NodeToGridOffsets returns n's (down, right, depth) components. Node
// already stores these directly; this exists so callers outside package
// core don't need to reach into Node's fields directly.
func NodeToGridOffsets(n core.Node) (down, right int, depth core.Layer) {
	return n.Down, n.Right, n.Depth
}

// inBounds1Layer reports whether (down, right) lies within a single-layer
// grid of the given dimensions.
func inBounds1Layer(downCnt, rightCnt, down, right int) bool {
	return down >= 0 && down < downCnt && right >= 0 && right < rightCnt
}

// elem resolves a sequence element as a core.Option, used by EdgeWeight
// implementations to turn an ElementOffsets into scorer arguments.
func elem(s core.Sequence, has bool, offset int) core.Option {
	if !has {
		return core.None()
	}
	return core.Some(s.At(offset))
}
