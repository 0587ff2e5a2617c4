package scorer

import (
	"errors"

	"github.com/katalvlaran/palign/core"
)

// ErrNilMatrix indicates a Matrix scorer was built from a nil lookup
// function.
var ErrNilMatrix = errors.New("scorer: matrix lookup must not be nil")

// Constant returns a Scorer for diagonal edges: match when the two
// elements compare equal, mismatch otherwise. Non-diagonal edges (gap,
// free-ride, open/extend/close) are never passed to a Constant scorer in
// normal use, but if they are, both missing elements fall through to the
// mismatch weight.
func Constant(match, mismatch core.Weight) core.Scorer {
	return func(_ core.Edge, down, right core.Option) core.Weight {
		dv, dok := down.Get()
		rv, rok := right.Get()
		if dok && rok && dv == rv {
			return match
		}
		return mismatch
	}
}

// Gap returns a constant-weight Scorer for down-gap/right-gap edges,
// ignoring which single element is present.
func Gap(weight core.Weight) core.Scorer {
	return func(core.Edge, core.Option, core.Option) core.Weight { return weight }
}

// FreeRide returns a constant-weight Scorer for free-ride edges. Pass 0
// for the conventional "no penalty, no bonus" shortcut used by local,
// fitting and overlap alignment.
func FreeRide(weight core.Weight) core.Scorer {
	return func(core.Edge, core.Option, core.Option) core.Weight { return weight }
}

// Matrix returns a Scorer for diagonal edges that looks up a weight for
// the (down, right) element pair via lookup, e.g. a BLOSUM/PAM-style
// substitution table. lookup must not be nil.
func Matrix(lookup func(down, right any) core.Weight) core.Scorer {
	return func(_ core.Edge, down, right core.Option) core.Weight {
		dv, _ := down.Get()
		rv, _ := right.Get()
		return lookup(dv, rv)
	}
}

// Levenshtein returns the substitution and gap scorers for classic edit
// distance: a match costs nothing, while a substitution, insertion or
// deletion each cost one edit. Negating an AlignGlobal result computed
// with this preset recovers the edit distance between the two sequences.
func Levenshtein() (subst, gap core.Scorer) {
	return Constant(0, -1), Gap(-1)
}

// AffinePreset bundles the three scorers an extended-gap graph needs
// beyond substitution: gap-open, gap-extend and gap-close.
type AffinePreset struct {
	Open, Extend, Close core.Scorer
}

// DefaultAffine returns the conventional affine-gap preset: opening a gap
// costs gapOpen, each further extension costs gapExtend, and returning to
// the diagonal plane is free.
func DefaultAffine(gapOpen, gapExtend core.Weight) AffinePreset {
	return AffinePreset{
		Open:   Gap(gapOpen),
		Extend: Gap(gapExtend),
		Close:  FreeRide(0),
	}
}
