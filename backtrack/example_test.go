package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/palign/backtrack"
	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/seq"
)

func ExampleRun() {
	v, w := seq.FromString("abc"), seq.FromString("azc")
	g, err := dag.NewGlobalGraph(v, w, scorer.Constant(1, -1), scorer.Gap(-2))
	if err != nil {
		panic(err)
	}

	res, err := backtrack.Run(g)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Weight)
	// Output: 1
}
