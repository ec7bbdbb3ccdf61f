package backtracker_test

import (
	"testing"

	"github.com/duh102/mazegen/backtracker"
	"github.com/duh102/mazegen/grid"
)

// BenchmarkGenerate measures full generation (grid build, carve, seal) on a
// 500×500 flat grid. Complexity: O(rows×cols).
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := backtracker.Generate(500, 500, grid.Flat, backtracker.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCarve measures the carve alone on a 500×500 cylindrical grid,
// excluding grid construction from the timed section.
func BenchmarkCarve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := grid.New(500, 500, grid.Cylindrical)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		b.StartTimer()

		if err = backtracker.Carve(g, backtracker.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
