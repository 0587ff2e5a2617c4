package core

// Sequence is the external collaborator an alignment graph is built over.
// It is deliberately minimal: random-access, indexable by an unsigned
// offset, with a size. The element type is opaque to the core — scorers
// are the only code that ever interprets what At returns.
//
// Implementations live in package seq; Sequence itself is declared here so
// that core.Node/core.Edge-consuming code never needs to import seq.
type Sequence interface {
	// Len returns the number of elements in the sequence.
	Len() int
	// At returns the element at the given zero-based offset. Callers never
	// pass an offset outside [0, Len()).
	At(offset int) any
}
