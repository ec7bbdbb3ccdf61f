// File: backtracker/example_test.go
package backtracker_test

import (
	"fmt"

	"github.com/duh102/mazegen/backtracker"
	"github.com/duh102/mazegen/grid"
)

// ExampleGenerate demonstrates the one-call front door: a seeded 3×4
// cylindrical maze sealed into a descriptor. Passage count is structural:
// always cells-1 for a perfect maze.
func ExampleGenerate() {
	m, err := backtracker.Generate(3, 4, grid.Cylindrical, backtracker.WithSeed(42))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Printf("%d×%d %s maze\n", m.Rows(), m.Cols(), m.Topology())
	fmt.Println("passages:", m.PassageCount())

	// Output:
	// 3×4 cylindrical maze
	// passages: 11
}

// ExampleCarve demonstrates carving a caller-owned grid, for callers that
// want the grid before it is sealed.
func ExampleCarve() {
	g, _ := grid.New(2, 2, grid.Flat)
	if err := backtracker.Carve(g, backtracker.WithSeed(7)); err != nil {
		fmt.Println("carve:", err)
		return
	}

	fmt.Println("removed:", g.RemovedWalls())
	fmt.Println("remaining:", g.WallCount())

	// Output:
	// removed: 3
	// remaining: 1
}
