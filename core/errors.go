package core

import "errors"

// Sentinel errors shared by every package that embeds a core.Node/core.Edge
// and needs to report an out-of-grid or malformed reference. Packages with
// their own preconditions (dag, backtrack, walker, ...) define their own
// sentinel errors and wrap these where a core-level check failed first.
var (
	// ErrNodeOutOfBounds indicates a Node's (Down, Right[, Depth]) lies
	// outside the grid a graph was constructed over.
	ErrNodeOutOfBounds = errors.New("core: node out of grid bounds")

	// ErrEmptySequence indicates a Sequence with Len() == 0 was passed
	// where at least the grid dimension it defines (down or right count)
	// must be >= 1; note grid_down_cnt/grid_right_cnt = len+1 always
	// accommodate empty sequences, so this error
	// is reserved for APIs that explicitly require non-empty input (e.g.
	// scorer presets built from a substitution alphabet).
	ErrEmptySequence = errors.New("core: sequence must not be empty")
)
