package workpool_test

import (
	"fmt"

	"github.com/katalvlaran/palign/workpool"
)

func ExampleFork() {
	p := workpool.New(2)
	defer p.Close()

	left, _ := workpool.Fork(p, func() (int, error) { return 3, nil })
	right, _ := workpool.Fork(p, func() (int, error) { return 4, nil })

	a, _ := workpool.Join(p, left)
	b, _ := workpool.Join(p, right)
	fmt.Println(a + b)
	// Output: 7
}
