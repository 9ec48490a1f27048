// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/knossos-go/knossos/grid"
)

// ExampleGrid_CarvePassage demonstrates the single mutation entry point and
// the symmetry it maintains: opening East on one cell opens West on its
// neighbor in the same call.
func ExampleGrid_CarvePassage() {
	g, _ := grid.NewGrid(2, 1)

	a := grid.Coords{X: 0, Y: 0}
	b := grid.Coords{X: 1, Y: 0}
	_ = g.CarvePassage(a, b)

	left, _ := g.CellAt(a)
	right, _ := g.CellAt(b)
	fmt.Println("left :", left)
	fmt.Println("right:", right)
	fmt.Println("both ends:", left.IsEnd() && right.IsEnd())

	// Output:
	// left : 0100
	// right: 1000
	// both ends: true
}

// ExampleGrid_Neighbors shows topological navigation: neighbors depend only
// on the grid extent, never on wall state.
func ExampleGrid_Neighbors() {
	g, _ := grid.NewGrid(3, 3)

	for _, n := range g.Neighbors(grid.Coords{X: 0, Y: 0}) {
		fmt.Println(n)
	}

	// Output:
	// (0,1)
	// (1,0)
}
