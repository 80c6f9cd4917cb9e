// Package coloring_test shows the incremental coloring state on a triangle:
// two vertices forced into one color conflict, a third color resolves it.
package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/graph"
)

// ExampleColoring_Assign builds a conflict, inspects the maintained counters,
// then repairs it by moving one endpoint to a fresh color.
func ExampleColoring_Assign() {
	var c = coloring.New(triangle()) // every vertex uncolored, no slots
	_, _ = c.Assign(0, coloring.NewColor)
	_, _ = c.Assign(1, 0)
	_, _ = c.Assign(2, coloring.NewColor)
	fmt.Println(c.Penalty(), c.Conflicting(), c.NumColors())

	_, _ = c.Unassign(1)
	var slot, _ = c.Assign(1, coloring.NewColor)
	fmt.Println(slot, c.IsLegal())
	fmt.Println(c.Format())
	// Output:
	// 1 [0 1] 2
	// 2 true
	// 0,0,3,0:2:1
}

// ExampleColoring_ReduceKeepLegal drops a color class and refits its vertex.
func ExampleColoring_ReduceKeepLegal() {
	var g = graph.MustNew("p3", 3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	var c, _ = coloring.FromColors(g, []int{0, 1, 2})
	var r, _ = c.ReduceKeepLegal(2)
	fmt.Println(r.Encode(), r.IsLegal())
	// Output:
	// 0:1:0 true
}
