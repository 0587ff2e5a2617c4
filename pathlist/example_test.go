package pathlist_test

import (
	"fmt"

	"github.com/katalvlaran/palign/core"
	"github.com/katalvlaran/palign/pathlist"
)

func ExampleList_PushPrefix() {
	mid := core.Edge{Source: core.Node{Down: 1, Right: 1}, Destination: core.Node{Down: 2, Right: 2}}
	l, anchor := pathlist.New(mid)

	prefix := core.Edge{Source: core.Node{Down: 0, Right: 0}, Destination: core.Node{Down: 1, Right: 1}}
	if _, err := l.PushPrefix(anchor, prefix); err != nil {
		panic(err)
	}

	for e := range l.WalkForward() {
		fmt.Println(e.Source, "->", e.Destination)
	}
	// Output:
	// {0 0 diagonal} -> {1 1 diagonal}
	// {1 1 diagonal} -> {2 2 diagonal}
}
