package pathlist

import (
	"iter"

	"github.com/katalvlaran/palign/core"
)

// List is an arena-backed doubly-linked list of edges, initialized with a
// single edge and grown by inserting before or after an existing anchor.
type List struct {
	nodes      []node
	head, tail int
}

// New initializes a single-element list holding edge, returning the list
// and a handle to that element.
func New(edge core.Edge) (*List, Handle) {
	l := &List{
		nodes: []node{{edge: edge, prev: noIndex, next: noIndex}},
		head:  0,
		tail:  0,
	}
	return l, Handle(0)
}

// PushPrefix inserts edge immediately before anchor, requiring
// edge.Destination == anchor's edge Source, and returns a handle to the
// newly inserted element.
func (l *List) PushPrefix(anchor Handle, edge core.Edge) (Handle, error) {
	if int(anchor) < 0 || int(anchor) >= len(l.nodes) {
		return 0, ErrInvalidHandle
	}
	if edge.Destination != l.nodes[anchor].edge.Source {
		return 0, ErrPrefixMismatch
	}

	prevIdx := l.nodes[anchor].prev
	newIdx := len(l.nodes)
	l.nodes = append(l.nodes, node{edge: edge, prev: prevIdx, next: int(anchor)})
	l.nodes[anchor].prev = newIdx
	if prevIdx == noIndex {
		l.head = newIdx
	} else {
		l.nodes[prevIdx].next = newIdx
	}
	return Handle(newIdx), nil
}

// PushSuffix inserts edge immediately after anchor, requiring
// edge.Source == anchor's edge Destination, and returns a handle to the
// newly inserted element.
func (l *List) PushSuffix(anchor Handle, edge core.Edge) (Handle, error) {
	if int(anchor) < 0 || int(anchor) >= len(l.nodes) {
		return 0, ErrInvalidHandle
	}
	if edge.Source != l.nodes[anchor].edge.Destination {
		return 0, ErrSuffixMismatch
	}

	nextIdx := l.nodes[anchor].next
	newIdx := len(l.nodes)
	l.nodes = append(l.nodes, node{edge: edge, prev: int(anchor), next: nextIdx})
	l.nodes[anchor].next = newIdx
	if nextIdx == noIndex {
		l.tail = newIdx
	} else {
		l.nodes[nextIdx].prev = newIdx
	}
	return Handle(newIdx), nil
}

// Len reports the number of edges currently in the list.
func (l *List) Len() int { return len(l.nodes) }

// WalkForward iterates the list's edges from its first to its last.
func (l *List) WalkForward() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for i := l.head; i != noIndex; i = l.nodes[i].next {
			if !yield(l.nodes[i].edge) {
				return
			}
		}
	}
}

// WalkBackward iterates the list's edges from its last to its first.
func (l *List) WalkBackward() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for i := l.tail; i != noIndex; i = l.nodes[i].prev {
			if !yield(l.nodes[i].edge) {
				return
			}
		}
	}
}

// Edges materializes the list's edges in forward order.
func (l *List) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(l.nodes))
	for e := range l.WalkForward() {
		out = append(out, e)
	}
	return out
}

// Head and Tail return handles to the list's first and last elements.
func (l *List) Head() Handle { return Handle(l.head) }
func (l *List) Tail() Handle { return Handle(l.tail) }
