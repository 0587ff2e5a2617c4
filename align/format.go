package align

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/palign/core"
)

// EdgesToElementPairs walks path and, for every edge that consumes at
// least one sequence element, resolves the element(s) it consumes against
// v and w. Diagonal edges yield both present; gap edges yield one present;
// free-ride and gap-close edges consume nothing and are skipped entirely,
// per spec's "neither (skipped)" for free-rides.
func EdgesToElementPairs(path []core.Edge, v, w core.Sequence) []Pair {
	pairs := make([]Pair, 0, len(path))
	for _, e := range path {
		off := e.Offsets()
		if !off.HasDown && !off.HasRight {
			continue
		}
		var down, right core.Option
		if off.HasDown {
			down = core.Some(v.At(off.Down))
		} else {
			down = core.None()
		}
		if off.HasRight {
			right = core.Some(w.At(off.Right))
		} else {
			right = core.None()
		}
		pairs = append(pairs, Pair{Down: down, Right: right})
	}
	return pairs
}

// Format renders pairs as the two aligned strings a test scaffold would
// print, one element per column, '-' standing in for the gap side of a
// pair whose partner element is absent.
func Format(pairs []Pair) (top, bottom string) {
	var topB, bottomB strings.Builder
	for _, p := range pairs {
		writeElem(&topB, p.Down)
		writeElem(&bottomB, p.Right)
	}
	return topB.String(), bottomB.String()
}

func writeElem(b *strings.Builder, o core.Option) {
	v, ok := o.Get()
	if !ok {
		b.WriteByte('-')
		return
	}
	switch x := v.(type) {
	case byte:
		b.WriteByte(x)
	case rune:
		b.WriteRune(x)
	default:
		fmt.Fprintf(b, "%v", x)
	}
}
