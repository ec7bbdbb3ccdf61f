// Package backtracker carves perfect mazes by randomized depth-first
// spanning-tree growth (the "recursive backtracker"), restructured as an
// explicit stack loop so grid size never threatens the call stack.
package backtracker

import (
	"fmt"
	"math/rand"

	"github.com/duh102/mazegen/grid"
	"github.com/duh102/mazegen/maze"
)

// Carve grows a random spanning tree over g in place, removing one wall per
// newly reached cell.
//
// Error Conditions:
//   - ErrNilGrid:              g is nil.
//   - ErrAlreadyCarved:        g has removed walls from a previous carve.
//   - grid.ErrCellOutOfBounds: a WithStart root lies outside the grid.
//
// Steps:
//  1. Validate: g non-nil and pristine (all walls present).
//  2. Resolve the RNG (WithRand, else seed-derived) and the root cell
//     (WithStart, else two RNG draws).
//  3. Pre-visit masked cells (WithMask), mark the root visited, push it on
//     the stack.
//  4. While the stack is non-empty:
//     a. Collect the top cell's unvisited neighbors in N,E,S,W order.
//     b. If any exist: pick one uniformly, remove the shared wall, mark it
//     visited, push it (it becomes the new top).
//     c. Otherwise pop (backtrack).
//
// A wall is only removed toward a cell not yet in the tree, so no cycle is
// ever introduced; every participating cell is pushed exactly once, so the
// loop terminates with a tree spanning every cell the root can reach
// outside the mask, one wall removed per cell beyond the root.
//
// Complexity: O(rows×cols) time (each cell pushed and popped once, four
// neighbor inspections per visit), O(rows×cols) memory for the visited set
// and stack.
func Carve(g *grid.Grid, opts ...Option) error {
	// 1. Validate input grid.
	if g == nil {
		return ErrNilGrid
	}
	if g.RemovedWalls() != 0 {
		return fmt.Errorf("%w: %d removed", ErrAlreadyCarved, g.RemovedWalls())
	}

	// 2. Apply options and resolve the RNG stream and carve root.
	cfg := defaultConfig(opts...)
	rng := cfg.resolveRNG()
	root, err := cfg.resolveRoot(g, rng)
	if err != nil {
		return err
	}

	return carve(g, cfg, rng, root)
}

// carve runs the spanning-tree growth with everything resolved: grid
// validated, RNG and root fixed. Split out so Generate can resolve the
// root itself (it needs it to count the sealed cells for the descriptor).
func carve(g *grid.Grid, cfg carveConfig, rng *rand.Rand, root grid.Cell) error {
	// 3. Seed the visited set and the backtrack stack. Masked cells are
	// pre-visited so the walk never extends into them; the root joins the
	// tree regardless of the mask.
	cells := g.CellCount()
	visited := make([]bool, cells)
	index := func(c grid.Cell) int { return c.Row*g.Cols() + c.Col }
	if cfg.mask != nil {
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				cell := grid.Cell{Row: r, Col: c}
				if cfg.mask(cell) {
					visited[index(cell)] = true
				}
			}
		}
	}
	visited[index(root)] = true
	stack := make([]grid.Cell, 0, cells)
	stack = append(stack, root)

	// Scratch buffer for unvisited-neighbor candidates (at most four).
	candidates := make([]grid.Cell, 0, 4)

	// 4. Main loop: extend toward unvisited cells, backtrack when stuck.
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// 4a. Unvisited neighbors of the top cell, in fixed N,E,S,W order.
		neighbors, err := g.Neighbors(top)
		if err != nil {
			// Unreachable for cells the carve itself pushed; surface anyway.
			return err
		}
		candidates = candidates[:0]
		for _, n := range neighbors {
			if !visited[index(n.Cell)] {
				candidates = append(candidates, n.Cell)
			}
		}

		// 4c. Dead end: backtrack.
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// 4b. Branch: carve toward one unvisited neighbor chosen uniformly.
		next := candidates[rng.Intn(len(candidates))]
		if err = g.RemoveWall(top, next); err != nil {
			return err
		}
		visited[index(next)] = true
		stack = append(stack, next)
	}

	return nil
}

// Generate is the one-call front door: build a pristine grid, carve it, and
// seal the descriptor.
//
// Error Conditions:
//   - grid.ErrInvalidDimensions / grid.ErrUnknownTopology: from grid.New.
//   - grid.ErrCellOutOfBounds: a WithStart root or WithEndpoints marker
//     outside the grid.
//   - maze.ErrIncompleteMaze: a WithMask mask disconnected the unmasked
//     region, so the carve could not span it.
//
// Without a mask the descriptor seal cannot fail its invariant check: the
// carve leaves exactly cells-1 removed walls. With one, the sealed-cell
// count is declared to the seal, which still verifies the spanning tree
// over the participating cells.
//
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, topo grid.Topology, opts ...Option) (*maze.Maze, error) {
	g, err := grid.New(rows, cols, topo)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig(opts...)
	rng := cfg.resolveRNG()
	root, err := cfg.resolveRoot(g, rng)
	if err != nil {
		return nil, err
	}
	if err = carve(g, cfg, rng, root); err != nil {
		return nil, err
	}

	var sealOpts []maze.Option
	if cfg.startMark != nil && cfg.endMark != nil {
		sealOpts = append(sealOpts, maze.WithEndpoints(*cfg.startMark, *cfg.endMark))
	}
	if cfg.mask != nil {
		sealed := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := grid.Cell{Row: r, Col: c}
				if cell != root && cfg.mask(cell) {
					sealed++
				}
			}
		}
		sealOpts = append(sealOpts, maze.WithSealedCells(sealed))
	}

	return maze.New(g, sealOpts...)
}

// boxSafeRows is the number of rows below the resting position that stay
// sealed except for the exit column, so the lid cannot be popped early.
const boxSafeRows = 3

// Minimum maze-box dimensions: the layout reserves the start row plus
// boxSafeRows safe rows and still needs one carvable body row, and the
// resting position must have room to swing two columns sideways.
const (
	minBoxRows = 5
	minBoxCols = 4
)

// GenerateBox generates a maze shaped for a twist-to-open maze box: a
// cylindrical grid whose row 0 is sealed except for the start cell (which
// opens only south, toward the body) and whose top boxSafeRows rows are
// sealed except for the exit column. The start and exit columns are drawn
// from the RNG; WithStart and WithEndpoints are overridden. The result
// passes render.SCAD's layout check.
//
// Error Conditions:
//   - ErrBoxTooSmall: rows < 5 or cols < 4.
func GenerateBox(rows, cols int, opts ...Option) (*maze.Maze, error) {
	if rows < minBoxRows || cols < minBoxCols {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBoxTooSmall, rows, cols)
	}

	cfg := defaultConfig(opts...)
	rng := cfg.resolveRNG()
	start := grid.Cell{Row: 0, Col: rng.Intn(cols)}
	end := grid.Cell{Row: rows - 1, Col: rng.Intn(cols)}
	mask := func(c grid.Cell) bool {
		if c.Row == 0 {
			return true
		}

		return c.Row >= rows-boxSafeRows && c.Col != end.Col
	}

	boxOpts := append(append([]Option{}, opts...),
		WithRand(rng), WithStart(start), WithEndpoints(start, end), WithMask(mask))

	return Generate(rows, cols, grid.Cylindrical, boxOpts...)
}
