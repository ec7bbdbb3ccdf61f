// Package grid models a rows×cols maze lattice as cells joined by shared,
// undirected walls. It supports:
//
//   - Flat or Cylindrical adjacency (column wraparound across the seam)
//   - Topology-keyed neighbor enumeration in a fixed N,E,S,W order
//   - A single mutation primitive, RemoveWall, so wall state stays the only
//     mutable surface
//
// Every wall is one shared state per edge, never two per-cell flags, so
// removing the wall between A and B is visible identically from both sides.
package grid

import "fmt"

// Grid is the full cell set for rows×cols under a topology, with every wall
// initially present. Wall state is stored as two row-major passage sets:
// eastOpen[i] covers the edge from cell i to its east neighbor, southOpen[i]
// the edge to its south neighbor. West and north resolve to the neighbor's
// east/south entry, which is what makes each wall a single shared state.
type Grid struct {
	rows, cols int
	topo       Topology

	eastOpen  []bool
	southOpen []bool

	removed int // count of walls cleared so far
	walls   int // total edges for this size and topology
}

// New constructs a Grid with all walls present.
// Returns ErrInvalidDimensions if rows < 1 or cols < 1, and
// ErrUnknownTopology for a topology other than Flat or Cylindrical.
//
// The cylindrical seam edge (east of column cols-1 back to column 0) exists
// only when cols > 2: with one column it would be a self-loop, with two it
// would duplicate the ordinary east edge between the columns.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, topo Topology) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	if topo != Flat && topo != Cylindrical {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(topo))
	}
	g := &Grid{
		rows:      rows,
		cols:      cols,
		topo:      topo,
		eastOpen:  make([]bool, rows*cols),
		southOpen: make([]bool, rows*cols),
	}
	g.walls = rows*(cols-1) + (rows-1)*cols
	if g.wraps() {
		g.walls += rows // one seam edge per ring
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Topology returns the adjacency rule set the grid was built with.
func (g *Grid) Topology() Topology { return g.topo }

// CellCount returns rows×cols.
func (g *Grid) CellCount() int { return g.rows * g.cols }

// RemovedWalls returns how many walls have been cleared so far.
func (g *Grid) RemovedWalls() int { return g.removed }

// WallCount returns how many walls are still present.
func (g *Grid) WallCount() int { return g.walls - g.removed }

// Contains reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// wraps reports whether the column seam is a real edge under this topology.
func (g *Grid) wraps() bool {
	return g.topo == Cylindrical && g.cols > 2
}

// neighbor resolves the adjacent cell of c in direction d, honoring the
// topology. The second return is false when no such neighbor exists.
// Complexity: O(1).
func (g *Grid) neighbor(c Cell, d Direction) (Cell, bool) {
	switch d {
	case North:
		if c.Row == 0 {
			return Cell{}, false
		}
		return Cell{Row: c.Row - 1, Col: c.Col}, true
	case South:
		if c.Row == g.rows-1 {
			return Cell{}, false
		}
		return Cell{Row: c.Row + 1, Col: c.Col}, true
	case East:
		if c.Col == g.cols-1 {
			if !g.wraps() {
				return Cell{}, false
			}
			return Cell{Row: c.Row, Col: 0}, true
		}
		return Cell{Row: c.Row, Col: c.Col + 1}, true
	case West:
		if c.Col == 0 {
			if !g.wraps() {
				return Cell{}, false
			}
			return Cell{Row: c.Row, Col: g.cols - 1}, true
		}
		return Cell{Row: c.Row, Col: c.Col - 1}, true
	default:
		return Cell{}, false
	}
}

// Neighbors returns the valid adjacent cells of c in the fixed N,E,S,W
// order. Returns ErrCellOutOfBounds if c is outside the grid.
// Complexity: O(1) time, O(1) memory (at most four entries).
func (g *Grid) Neighbors(c Cell) ([]Neighbor, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: %s in %d×%d", ErrCellOutOfBounds, c, g.rows, g.cols)
	}
	result := make([]Neighbor, 0, len(directions))
	for _, d := range directions {
		if n, ok := g.neighbor(c, d); ok {
			result = append(result, Neighbor{Dir: d, Cell: n})
		}
	}

	return result, nil
}

// index maps (row,col) to a row-major slice index.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// edge resolves the shared wall slot between a and b: which passage set it
// lives in and at which index. Fails with ErrNotAdjacent when no edge joins
// them; a cell outside the grid is adjacent to nothing.
// Complexity: O(1).
func (g *Grid) edge(a, b Cell) (set []bool, i int, err error) {
	if !g.Contains(a) || !g.Contains(b) {
		return nil, 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	for _, d := range directions {
		n, ok := g.neighbor(a, d)
		if !ok || n != b {
			continue
		}
		switch d {
		case East:
			return g.eastOpen, g.index(a), nil
		case West:
			return g.eastOpen, g.index(b), nil
		case South:
			return g.southOpen, g.index(a), nil
		default: // North
			return g.southOpen, g.index(b), nil
		}
	}

	return nil, 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
}

// WallBetween reports whether the wall between a and b is still present.
// Fails with ErrNotAdjacent when no shared wall slot exists.
// Complexity: O(1).
func (g *Grid) WallBetween(a, b Cell) (bool, error) {
	set, i, err := g.edge(a, b)
	if err != nil {
		return false, err
	}

	return !set[i], nil
}

// RemoveWall clears the shared wall between a and b, turning the edge into
// a passage. Removing an already-removed wall is a no-op, not an error.
// This is the grid's only mutation primitive. Complexity: O(1).
func (g *Grid) RemoveWall(a, b Cell) error {
	set, i, err := g.edge(a, b)
	if err != nil {
		return err
	}
	if !set[i] {
		set[i] = true
		g.removed++
	}

	return nil
}

// Clone returns a deep copy sharing no state with g.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.eastOpen = make([]bool, len(g.eastOpen))
	copy(cp.eastOpen, g.eastOpen)
	cp.southOpen = make([]bool, len(g.southOpen))
	copy(cp.southOpen, g.southOpen)

	return &cp
}
