package pathlist

import (
	"errors"

	"github.com/katalvlaran/palign/core"
)

// Sentinel errors returned by List's insertion operations.
var (
	// ErrInvalidHandle indicates a Handle that does not index a live node.
	ErrInvalidHandle = errors.New("pathlist: invalid handle")
	// ErrPrefixMismatch indicates edge does not chain into anchor's source.
	ErrPrefixMismatch = errors.New("pathlist: edge.Destination must equal anchor edge's Source")
	// ErrSuffixMismatch indicates edge does not chain out of anchor's
	// destination.
	ErrSuffixMismatch = errors.New("pathlist: edge.Source must equal anchor edge's Destination")
)

// noIndex marks the absence of a neighbor in the arena.
const noIndex = -1

// Handle identifies a live node in a List's arena; callers obtain one from
// New or a List's insertion methods and pass it back as an anchor.
type Handle int

// node is one arena slot: an edge plus its neighbors' arena indices.
type node struct {
	edge       core.Edge
	prev, next int
}
