// Package maze provides the immutable descriptor handed to renderers once
// generation completes: dimensions, topology, endpoint markers, and
// passage queries. It has no mutation surface.
package maze

import (
	"fmt"

	"github.com/duh102/mazegen/grid"
)

// Maze is the sealed output artifact of a generation run. It owns a private
// deep copy of the carved grid, so later mutation of the source grid cannot
// leak in, and exposes only read access.
type Maze struct {
	g     *grid.Grid
	start grid.Cell
	end   grid.Cell
}

// New seals a carved grid into an immutable descriptor.
//
// Error Conditions:
//   - ErrNilGrid:             g is nil.
//   - ErrIncompleteMaze:      removed-wall count != cells-sealed-1 (see
//     WithSealedCells), i.e. the carve has not produced a spanning tree
//     over the participating cells (defensive invariant check).
//   - grid.ErrCellOutOfBounds: an endpoint from WithEndpoints lies outside
//     the grid.
//
// Complexity: O(rows×cols) for the defensive copy.
func New(g *grid.Grid, opts ...Option) (*Maze, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	var cfg sealConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	// A tree over the participating cells: sealed cells contribute no edges.
	if want := g.CellCount() - cfg.sealed - 1; g.RemovedWalls() != want {
		return nil, fmt.Errorf("%w: %d removed, want %d", ErrIncompleteMaze, g.RemovedWalls(), want)
	}
	// Resolve endpoint defaults: opposite corners of the grid.
	start := grid.Cell{Row: 0, Col: 0}
	end := grid.Cell{Row: g.Rows() - 1, Col: g.Cols() - 1}
	if cfg.start != nil {
		start = *cfg.start
	}
	if cfg.end != nil {
		end = *cfg.end
	}
	for _, c := range []grid.Cell{start, end} {
		if !g.Contains(c) {
			return nil, fmt.Errorf("%w: endpoint %s in %d×%d", grid.ErrCellOutOfBounds, c, g.Rows(), g.Cols())
		}
	}

	return &Maze{g: g.Clone(), start: start, end: end}, nil
}

// Rows returns the row count.
func (m *Maze) Rows() int { return m.g.Rows() }

// Cols returns the column count.
func (m *Maze) Cols() int { return m.g.Cols() }

// Topology returns the adjacency rule set the maze was carved under.
func (m *Maze) Topology() grid.Topology { return m.g.Topology() }

// Start returns the entry marker cell.
func (m *Maze) Start() grid.Cell { return m.start }

// End returns the goal marker cell.
func (m *Maze) End() grid.Cell { return m.end }

// PassageCount returns the number of passages: one fewer than the number
// of cells participating in the spanning tree.
func (m *Maze) PassageCount() int { return m.g.RemovedWalls() }

// IsPassage reports whether a passage (removed wall) joins a and b — the
// inverse of wall presence. Fails with grid.ErrNotAdjacent when the cells
// share no edge. Complexity: O(1).
func (m *Maze) IsPassage(a, b grid.Cell) (bool, error) {
	present, err := m.g.WallBetween(a, b)
	if err != nil {
		return false, err
	}

	return !present, nil
}

// Openings returns the directions with open passages out of c, in the fixed
// N,E,S,W order. Fails with grid.ErrCellOutOfBounds for a cell outside the
// maze. Complexity: O(1).
func (m *Maze) Openings(c grid.Cell) ([]grid.Direction, error) {
	ns, err := m.g.Neighbors(c)
	if err != nil {
		return nil, err
	}
	open := make([]grid.Direction, 0, len(ns))
	for _, n := range ns {
		passage, perr := m.IsPassage(c, n.Cell)
		if perr != nil {
			return nil, perr
		}
		if passage {
			open = append(open, n.Dir)
		}
	}

	return open, nil
}
