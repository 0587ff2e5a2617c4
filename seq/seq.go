package seq

import "github.com/katalvlaran/palign/core"

// ByteSeq adapts a []byte to core.Sequence. At returns a byte boxed as any;
// scorers that expect bytes should type-assert accordingly.
type ByteSeq []byte

// Len implements core.Sequence.
func (b ByteSeq) Len() int { return len(b) }

// At implements core.Sequence.
func (b ByteSeq) At(offset int) any { return b[offset] }

// String returns the underlying bytes as a string, for test output.
func (b ByteSeq) String() string { return string(b) }

// RuneSeq adapts a []rune to core.Sequence, for callers working with
// decoded Unicode text rather than raw bytes.
type RuneSeq []rune

// Len implements core.Sequence.
func (r RuneSeq) Len() int { return len(r) }

// At implements core.Sequence.
func (r RuneSeq) At(offset int) any { return r[offset] }

// String returns the underlying runes as a string.
func (r RuneSeq) String() string { return string(r) }

// FromString is a convenience constructor building a ByteSeq from s. Most
// of this module's examples and tests work over plain ASCII strings, where
// byte-indexing and rune-indexing coincide.
func FromString(s string) ByteSeq { return ByteSeq(s) }

var (
	_ core.Sequence = ByteSeq(nil)
	_ core.Sequence = RuneSeq(nil)
)
