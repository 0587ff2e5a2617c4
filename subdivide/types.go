package subdivide

import (
	"errors"

	"github.com/katalvlaran/palign/core"
)

// ErrNilGraph is returned when Run is called with a nil graph.
var ErrNilGraph = errors.New("subdivide: graph must not be nil")

// Result is the outcome of a sliced reconstruction: the best root-to-leaf
// weight and the edges of a path that achieves it, in order.
type Result struct {
	Path   []core.Edge
	Weight core.Weight
}
