package backtrack

import (
	"errors"

	"github.com/katalvlaran/palign/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil dag.Graph was passed to Run.
	ErrNilGraph = errors.New("backtrack: graph is nil")

	// ErrNoPath indicates the leaf's slot was never relaxed, meaning no
	// root-to-leaf path exists. This should not happen for a well-formed
	// alignment graph (every node but root has in-degree >= 1), but is
	// checked defensively since Run accepts any dag.Graph implementation.
	ErrNoPath = errors.New("backtrack: leaf unreachable from root")
)

// Result is the outcome of a completed backtracking pass: the
// maximum-weight path from root to leaf, in traversal order, and its
// total weight.
type Result struct {
	Path   []core.Edge
	Weight core.Weight
}
