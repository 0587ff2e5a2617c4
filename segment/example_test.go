package segment_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/palign/dag"
	"github.com/katalvlaran/palign/scorer"
	"github.com/katalvlaran/palign/segment"
	"github.com/katalvlaran/palign/seq"
)

func ExampleCompute() {
	v, w := seq.FromString("abc"), seq.FromString("azc")
	g, err := dag.NewGlobalGraph(v, w, scorer.Constant(1, -1), scorer.Gap(-2))
	if err != nil {
		panic(err)
	}

	res, err := segment.Compute(context.Background(), g, segment.DefaultEpsilon)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Weight, len(res.Parts))
	// Output: 1 1
}
