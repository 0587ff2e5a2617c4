package seq

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/palign/core"
)

// ChunkSeq adapts an underlying core.Sequence into a coarser one whose
// elements are runs of chunkLen consecutive underlying elements, for
// aligning at a codon or word granularity rather than one element at a
// time. If inner's length isn't evenly divisible by chunkLen, the
// trailing remainder is dropped rather than forming a short final chunk.
type ChunkSeq struct {
	inner    core.Sequence
	chunkLen int
}

// NewChunkSeq builds a ChunkSeq over inner. It panics if chunkLen isn't
// positive.
func NewChunkSeq(inner core.Sequence, chunkLen int) ChunkSeq {
	if chunkLen <= 0 {
		panic("seq: chunk length must be positive")
	}
	return ChunkSeq{inner: inner, chunkLen: chunkLen}
}

// Len implements core.Sequence, truncating any remainder shorter than a
// full chunk.
func (c ChunkSeq) Len() int { return c.inner.Len() / c.chunkLen }

// At implements core.Sequence. The returned value is a string built from
// the chunk's elements (byte and rune elements as their characters, any
// other element as fmt.Fprint renders it), so two chunks compare equal
// under == when every underlying element compares equal, keeping ChunkSeq
// usable with scorer.Constant and scorer.Matrix. Non-byte, non-rune
// elements whose renderings run together can make different chunks render
// to the same string.
func (c ChunkSeq) At(offset int) any {
	start := offset * c.chunkLen
	var b strings.Builder
	for i := 0; i < c.chunkLen; i++ {
		switch e := c.inner.At(start + i).(type) {
		case byte:
			b.WriteByte(e)
		case rune:
			b.WriteRune(e)
		default:
			fmt.Fprint(&b, e)
		}
	}
	return b.String()
}

var _ core.Sequence = ChunkSeq{}
