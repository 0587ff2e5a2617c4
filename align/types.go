package align

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/segment"
)

// Sentinel errors returned by the AlignX entry points, beyond whatever a
// graph constructor or backend already reports.
var (
	// ErrNilSequence indicates a nil v or w was passed to an AlignX call.
	ErrNilSequence = errors.New("align: sequence must not be nil")

	// ErrStrictPathWeightMismatch indicates Strict mode's round-trip
	// rescoring check (testable property 5) found the reconstructed
	// path's own weight disagreeing with the backend's reported total.
	// This should never happen for a well-formed graph and scorer set;
	// it exists to catch a broken scorer or a backend regression.
	ErrStrictPathWeightMismatch = errors.New("align: path weight does not match reported total")
)

// Backend picks which package computes the best root-to-leaf path.
type Backend int

const (
	// Dense runs package backtrack's single dense pass: O(|v|*|w|) memory,
	// the simplest and fastest choice for small-to-medium inputs.
	Dense Backend = iota
	// Sliced runs package subdivide's linear-space recursive bisection:
	// O(|v|+|w|) memory plus the returned path, for large inputs.
	Sliced
)

// String renders a Backend for debugging and test failure messages.
func (b Backend) String() string {
	if b == Sliced {
		return "sliced"
	}
	return "dense"
}

// Options configures an AlignX call: which backend computes the path, how
// many workers the Sliced backend's pool gets, whether Strict mode's
// self-checks run, and the resident segmenter's tie-breaking tolerance.
type Options struct {
	Backend Backend
	Workers int
	Strict  bool
	Epsilon float64
}

// Option is a functional option over Options, following this repo's usual
// configuration pattern.
type Option func(*Options)

// WithBackend selects Dense or Sliced.
func WithBackend(b Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithWorkers sizes the Sliced backend's work-stealing pool. n <= 0 makes
// the pool start runtime.NumCPU workers; the default (DefaultOptions) is
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrict enables the round-trip weight self-check (testable property
// 5) after every AlignX call, panicking with a descriptive message if it
// fails. Matches spec's debug-flag precondition model: checked only when
// explicitly requested, undefined by omission otherwise.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithEpsilon overrides the resident segmenter's tie-breaking tolerance
// used by the Sliced backend (ignored by Dense, which never compares
// floating weights for equality).
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) { o.Epsilon = epsilon }
}

// DefaultOptions returns Dense backend, hardware-concurrency workers,
// Strict disabled, and the segmenter's default epsilon.
func DefaultOptions() Options {
	return Options{
		Backend: Dense,
		Workers: runtime.GOMAXPROCS(0),
		Strict:  false,
		Epsilon: segment.DefaultEpsilon,
	}
}

// Result is the outcome of an AlignX call: the best root-to-leaf path, in
// traversal order, and its total weight.
type Result struct {
	Path   []core.Edge
	Weight core.Weight
}

// Pair is one column of an aligned-string rendering: the v element and/or
// w element consumed by one path edge, per edges_to_element_pairs.
type Pair struct {
	Down, Right core.Option
}
