package backtracker_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duh102/mazegen/backtracker"
	"github.com/duh102/mazegen/grid"
	"github.com/duh102/mazegen/maze"
)

//----------------------------------------------------------------------------//
// Test helpers
//----------------------------------------------------------------------------//

// step moves one cell in direction d under the maze's topology.
func step(m *maze.Maze, c grid.Cell, d grid.Direction) grid.Cell {
	switch d {
	case grid.North:
		return grid.Cell{Row: c.Row - 1, Col: c.Col}
	case grid.South:
		return grid.Cell{Row: c.Row + 1, Col: c.Col}
	case grid.East:
		return grid.Cell{Row: c.Row, Col: (c.Col + 1) % m.Cols()}
	default: // West
		return grid.Cell{Row: c.Row, Col: (c.Col - 1 + m.Cols()) % m.Cols()}
	}
}

// reachable floods the passage graph from the given cell and returns the
// number of cells reached. Together with PassageCount == participating-1
// this proves the spanning-tree invariant: connected with n-1 edges implies
// acyclic.
func reachable(t *testing.T, m *maze.Maze, from grid.Cell) int {
	t.Helper()
	seen := map[grid.Cell]bool{from: true}
	queue := []grid.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		open, err := m.Openings(c)
		require.NoError(t, err)
		for _, d := range open {
			n := step(m, c, d)
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(seen)
}

// signature captures the full wall set as a comparable string.
func signature(t *testing.T, m *maze.Maze) string {
	t.Helper()
	sig := ""
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			open, err := m.Openings(grid.Cell{Row: r, Col: c})
			require.NoError(t, err)
			sig += fmt.Sprintf("%v;", open)
		}
	}

	return sig
}

//----------------------------------------------------------------------------//
// Carve preconditions
//----------------------------------------------------------------------------//

func TestCarve_NilGrid(t *testing.T) {
	assert.ErrorIs(t, backtracker.Carve(nil), backtracker.ErrNilGrid)
}

func TestCarve_AlreadyCarved(t *testing.T) {
	g, err := grid.New(2, 2, grid.Flat)
	require.NoError(t, err)
	require.NoError(t, g.RemoveWall(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}))

	assert.ErrorIs(t, backtracker.Carve(g), backtracker.ErrAlreadyCarved)
}

func TestCarve_StartOutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2, grid.Flat)
	require.NoError(t, err)

	err = backtracker.Carve(g, backtracker.WithStart(grid.Cell{Row: 5, Col: 5}))
	assert.ErrorIs(t, err, grid.ErrCellOutOfBounds)
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		m, err := backtracker.Generate(dims[0], dims[1], grid.Flat)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
	}
}

//----------------------------------------------------------------------------//
// Spanning-tree invariant
//----------------------------------------------------------------------------//

// TestGenerate_SpanningTree verifies, across sizes and topologies, that the
// passage graph has exactly cells-1 edges and reaches every cell.
func TestGenerate_SpanningTree(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		topo       grid.Topology
	}{
		{"Flat2x2", 2, 2, grid.Flat},
		{"Flat5x8", 5, 8, grid.Flat},
		{"FlatColumn", 9, 1, grid.Flat},
		{"FlatRow", 1, 9, grid.Flat},
		{"Cylindrical4x4", 4, 4, grid.Cylindrical},
		{"Cylindrical10x7", 10, 7, grid.Cylindrical},
		{"CylindricalRing", 1, 6, grid.Cylindrical},
		{"CylindricalDegenerate", 4, 2, grid.Cylindrical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := backtracker.Generate(tc.rows, tc.cols, tc.topo, backtracker.WithSeed(7))
			require.NoError(t, err)

			cells := tc.rows * tc.cols
			assert.Equal(t, cells-1, m.PassageCount())
			assert.Equal(t, cells, reachable(t, m, grid.Cell{}), "every cell must be reachable")
			assert.Equal(t, tc.topo, m.Topology())
		})
	}
}

// TestGenerate_SingleCell covers the degenerate 1×1 maze: zero passages,
// zero walls, no error.
func TestGenerate_SingleCell(t *testing.T) {
	m, err := backtracker.Generate(1, 1, grid.Flat)
	require.NoError(t, err)
	assert.Equal(t, 0, m.PassageCount())

	open, err := m.Openings(grid.Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Empty(t, open)
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestGenerate_Deterministic verifies that a fixed (rows, cols, topology,
// seed) tuple reproduces a bit-identical wall set, including the 2×2
// seed-42 scenario.
func TestGenerate_Deterministic(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		topo       grid.Topology
		seed       int64
	}{
		{"Flat2x2Seed42", 2, 2, grid.Flat, 42},
		{"Flat6x6", 6, 6, grid.Flat, 1234},
		{"Cylindrical5x9", 5, 9, grid.Cylindrical, 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := backtracker.Generate(tc.rows, tc.cols, tc.topo, backtracker.WithSeed(tc.seed))
			require.NoError(t, err)
			second, err := backtracker.Generate(tc.rows, tc.cols, tc.topo, backtracker.WithSeed(tc.seed))
			require.NoError(t, err)

			assert.Equal(t, signature(t, first), signature(t, second))
		})
	}
}

// TestGenerate_SeedsDiverge checks that distinct seeds explore distinct
// mazes on a grid large enough that a collision would indicate the seed is
// being ignored.
func TestGenerate_SeedsDiverge(t *testing.T) {
	a, err := backtracker.Generate(12, 12, grid.Flat, backtracker.WithSeed(1))
	require.NoError(t, err)
	b, err := backtracker.Generate(12, 12, grid.Flat, backtracker.WithSeed(2))
	require.NoError(t, err)

	assert.NotEqual(t, signature(t, a), signature(t, b))
}

// TestCarve_WithRand verifies that an injected RNG stream drives the carve
// identically to the equivalent seed.
func TestCarve_WithRand(t *testing.T) {
	g1, err := grid.New(4, 4, grid.Flat)
	require.NoError(t, err)
	g2, err := grid.New(4, 4, grid.Flat)
	require.NoError(t, err)

	require.NoError(t, backtracker.Carve(g1, backtracker.WithSeed(77)))
	require.NoError(t, backtracker.Carve(g2, backtracker.WithRand(rand.New(rand.NewSource(77)))))

	m1, err := maze.New(g1)
	require.NoError(t, err)
	m2, err := maze.New(g2)
	require.NoError(t, err)
	assert.Equal(t, signature(t, m1), signature(t, m2))
}

// TestCarve_WithStart verifies the pinned root still spans the grid and
// keeps determinism.
func TestCarve_WithStart(t *testing.T) {
	root := grid.Cell{Row: 2, Col: 3}
	m1, err := backtracker.Generate(5, 5, grid.Flat,
		backtracker.WithSeed(5), backtracker.WithStart(root))
	require.NoError(t, err)
	m2, err := backtracker.Generate(5, 5, grid.Flat,
		backtracker.WithSeed(5), backtracker.WithStart(root))
	require.NoError(t, err)

	assert.Equal(t, 24, m1.PassageCount())
	assert.Equal(t, 25, reachable(t, m1, grid.Cell{}))
	assert.Equal(t, signature(t, m1), signature(t, m2))
}

//----------------------------------------------------------------------------//
// Masked carving and the maze box
//----------------------------------------------------------------------------//

// TestCarve_WithMask seals (0,1) out of a 2×2 grid: the carve spans the
// remaining three cells with two passages, which only seals into a
// descriptor when the sealed cell is declared.
func TestCarve_WithMask(t *testing.T) {
	blocked := grid.Cell{Row: 0, Col: 1}
	g, err := grid.New(2, 2, grid.Flat)
	require.NoError(t, err)

	err = backtracker.Carve(g,
		backtracker.WithStart(grid.Cell{}),
		backtracker.WithMask(func(c grid.Cell) bool { return c == blocked }))
	require.NoError(t, err)
	assert.Equal(t, 2, g.RemovedWalls())

	_, err = maze.New(g)
	assert.ErrorIs(t, err, maze.ErrIncompleteMaze)

	m, err := maze.New(g, maze.WithSealedCells(1))
	require.NoError(t, err)
	open, err := m.Openings(blocked)
	require.NoError(t, err)
	assert.Empty(t, open, "masked cell must keep all walls")
}

func TestGenerateBox_TooSmall(t *testing.T) {
	for _, dims := range [][2]int{{4, 6}, {5, 3}} {
		m, err := backtracker.GenerateBox(dims[0], dims[1])
		assert.Nil(t, m)
		assert.ErrorIs(t, err, backtracker.ErrBoxTooSmall)
	}
}

// TestGenerateBox_Layout verifies the maze-box shape on a 6×6 ring: row 0
// sealed except the start's south opening, the three rows under the lid
// sealed except the exit column, and the carved region one spanning tree.
func TestGenerateBox_Layout(t *testing.T) {
	m, err := backtracker.GenerateBox(6, 6, backtracker.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, grid.Cylindrical, m.Topology())
	require.Equal(t, 0, m.Start().Row)
	require.Equal(t, 5, m.End().Row)

	// Row 0: start opens south, everything else is sealed.
	for c := 0; c < 6; c++ {
		cell := grid.Cell{Row: 0, Col: c}
		open, oerr := m.Openings(cell)
		require.NoError(t, oerr)
		if cell == m.Start() {
			assert.Equal(t, []grid.Direction{grid.South}, open)
			continue
		}
		assert.Empty(t, open, "row-0 cell %s must stay sealed", cell)
	}

	// Safe rows 3 and 4: sealed except the exit column.
	for _, r := range []int{3, 4} {
		for c := 0; c < 6; c++ {
			if c == m.End().Col {
				continue
			}
			open, oerr := m.Openings(grid.Cell{Row: r, Col: c})
			require.NoError(t, oerr)
			assert.Empty(t, open, "safe-row cell (%d,%d) must stay sealed", r, c)
		}
	}

	// Participating cells: start + body rows 1..2 + exit column rows 3..5.
	assert.Equal(t, 15, m.PassageCount())
	assert.Equal(t, 16, reachable(t, m, m.Start()))
}

func TestGenerateBox_Deterministic(t *testing.T) {
	a, err := backtracker.GenerateBox(8, 5, backtracker.WithSeed(7))
	require.NoError(t, err)
	b, err := backtracker.GenerateBox(8, 5, backtracker.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Start(), b.Start())
	assert.Equal(t, a.End(), b.End())
	assert.Equal(t, signature(t, a), signature(t, b))
}

//----------------------------------------------------------------------------//
// Endpoint forwarding
//----------------------------------------------------------------------------//

func TestGenerate_Endpoints(t *testing.T) {
	start := grid.Cell{Row: 0, Col: 2}
	end := grid.Cell{Row: 3, Col: 0}
	m, err := backtracker.Generate(4, 4, grid.Cylindrical,
		backtracker.WithSeed(3), backtracker.WithEndpoints(start, end))
	require.NoError(t, err)

	assert.Equal(t, start, m.Start())
	assert.Equal(t, end, m.End())

	_, err = backtracker.Generate(4, 4, grid.Flat,
		backtracker.WithEndpoints(grid.Cell{Row: 9, Col: 9}, end))
	assert.ErrorIs(t, err, grid.ErrCellOutOfBounds)
}

//----------------------------------------------------------------------------//
// Concurrency: independent generations need no coordination
//----------------------------------------------------------------------------//

// TestGenerate_ConcurrentIndependence runs generations in parallel, each
// with its own RNG, and checks every result is a valid identical replica of
// the sequential run.
func TestGenerate_ConcurrentIndependence(t *testing.T) {
	want, err := backtracker.Generate(8, 8, grid.Cylindrical, backtracker.WithSeed(11))
	require.NoError(t, err)
	wantSig := signature(t, want)

	const workers = 8
	results := make(chan string, workers)
	for i := 0; i < workers; i++ {
		go func() {
			m, gerr := backtracker.Generate(8, 8, grid.Cylindrical, backtracker.WithSeed(11))
			if gerr != nil {
				results <- gerr.Error()
				return
			}
			sig := ""
			for r := 0; r < m.Rows(); r++ {
				for c := 0; c < m.Cols(); c++ {
					open, oerr := m.Openings(grid.Cell{Row: r, Col: c})
					if oerr != nil {
						results <- oerr.Error()
						return
					}
					sig += fmt.Sprintf("%v;", open)
				}
			}
			results <- sig
		}()
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, wantSig, <-results)
	}
}
