// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/duh102/mazegen.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or columns below the minimum of 1.
	ErrInvalidDimensions = errors.New("grid: rows and columns must each be at least 1")
	// ErrUnknownTopology indicates an unrecognized topology tag.
	ErrUnknownTopology = errors.New("grid: unknown topology")
	// ErrCellOutOfBounds indicates a cell coordinate outside the grid.
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrNotAdjacent indicates a wall query between two non-neighboring cells.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)

// Topology selects the adjacency rule set: Flat (no wraparound) or
// Cylindrical (the column axis wraps; rows never wrap).
type Topology int

const (
	// Flat uses plain rectangular adjacency: edge cells have fewer neighbors.
	Flat Topology = iota
	// Cylindrical wraps east/west across the column seam, so column 0 and
	// column cols-1 are neighbors. Rows behave as in Flat.
	Cylindrical
)

// String returns the canonical tag for t: "flat" or "cylindrical".
func (t Topology) String() string {
	switch t {
	case Flat:
		return "flat"
	case Cylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// ParseTopology maps a canonical tag back to its Topology.
// Returns ErrUnknownTopology for anything but "flat" or "cylindrical".
func ParseTopology(tag string) (Topology, error) {
	switch tag {
	case "flat":
		return Flat, nil
	case "cylindrical":
		return Cylindrical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, tag)
	}
}

// Cell identifies a single grid cell by integer coordinates.
// Row 0 is the first row; Col 0 is the first column.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction names one of the four orthogonal neighbor directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// directions lists all four directions in the fixed emission order used by
// Neighbors. The order is part of the determinism contract: seeded
// generation consumes neighbor candidates in exactly this sequence.
var directions = [4]Direction{North, East, South, West}

// Opposite returns the reverse direction (North↔South, East↔West).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Neighbor pairs an adjacent cell with the direction leading to it.
type Neighbor struct {
	Dir  Direction
	Cell Cell
}
