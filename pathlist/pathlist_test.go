package pathlist_test

import (
	"testing"

	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/pathlist"
	"github.com/stretchr/testify/require"
)

func node(down, right int) core.Node { return core.Node{Down: down, Right: right} }

func TestNewSingleElement(t *testing.T) {
	e := core.Edge{Source: node(0, 0), Destination: node(1, 1)}
	l, h := pathlist.New(e)
	require.Equal(t, 1, l.Len())
	require.Equal(t, []core.Edge{e}, l.Edges())
	require.Equal(t, h, l.Head())
	require.Equal(t, h, l.Tail())
}

func TestPushPrefixAndSuffixPreserveOrder(t *testing.T) {
	mid := core.Edge{Source: node(1, 1), Destination: node(2, 2)}
	l, anchor := pathlist.New(mid)

	prefix := core.Edge{Source: node(0, 0), Destination: node(1, 1)}
	prefixHandle, err := l.PushPrefix(anchor, prefix)
	require.NoError(t, err)

	suffix := core.Edge{Source: node(2, 2), Destination: node(3, 3)}
	_, err = l.PushSuffix(anchor, suffix)
	require.NoError(t, err)

	require.Equal(t, []core.Edge{prefix, mid, suffix}, l.Edges())
	require.Equal(t, prefixHandle, l.Head())

	var backward []core.Edge
	for e := range l.WalkBackward() {
		backward = append(backward, e)
	}
	require.Equal(t, []core.Edge{suffix, mid, prefix}, backward)
}

func TestPushPrefixRejectsMismatch(t *testing.T) {
	l, anchor := pathlist.New(core.Edge{Source: node(1, 1), Destination: node(2, 2)})
	_, err := l.PushPrefix(anchor, core.Edge{Source: node(0, 0), Destination: node(9, 9)})
	require.ErrorIs(t, err, pathlist.ErrPrefixMismatch)
}

func TestPushSuffixRejectsMismatch(t *testing.T) {
	l, anchor := pathlist.New(core.Edge{Source: node(1, 1), Destination: node(2, 2)})
	_, err := l.PushSuffix(anchor, core.Edge{Source: node(9, 9), Destination: node(3, 3)})
	require.ErrorIs(t, err, pathlist.ErrSuffixMismatch)
}

func TestPushRejectsInvalidHandle(t *testing.T) {
	l, _ := pathlist.New(core.Edge{Source: node(0, 0), Destination: node(1, 1)})
	_, err := l.PushSuffix(pathlist.Handle(7), core.Edge{})
	require.ErrorIs(t, err, pathlist.ErrInvalidHandle)
}

func TestPushPrefixThenSuffixAtDeeperAnchors(t *testing.T) {
	e2 := core.Edge{Source: node(2, 2), Destination: node(3, 3)}
	l, h2 := pathlist.New(e2)

	e1 := core.Edge{Source: node(1, 1), Destination: node(2, 2)}
	h1, err := l.PushPrefix(h2, e1)
	require.NoError(t, err)

	e0 := core.Edge{Source: node(0, 0), Destination: node(1, 1)}
	_, err = l.PushPrefix(h1, e0)
	require.NoError(t, err)

	e3 := core.Edge{Source: node(3, 3), Destination: node(4, 4)}
	_, err = l.PushSuffix(h2, e3)
	require.NoError(t, err)

	require.Equal(t, []core.Edge{e0, e1, e2, e3}, l.Edges())
}
