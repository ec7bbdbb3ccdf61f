// Package render defines the renderer contract, the renderer registry, and
// sentinel errors for the render subpackage of github.com/duh102/mazegen.
package render

import (
	"errors"
	"fmt"

	"github.com/duh102/mazegen/grid"
	"github.com/duh102/mazegen/maze"
)

// Sentinel errors for rendering.
var (
	// ErrNilMaze indicates a nil descriptor was passed to a renderer.
	ErrNilMaze = errors.New("render: maze is nil")
	// ErrUnsupportedTopology indicates the renderer cannot express the
	// maze's topology (the SCAD maze box is cylindrical-only).
	ErrUnsupportedTopology = errors.New("render: unsupported topology for this renderer")
	// ErrUnknownRenderer indicates a registry lookup for a name that is not
	// one of Names().
	ErrUnknownRenderer = errors.New("render: unknown renderer")
	// ErrBoxLayout indicates the maze does not reserve row 0 for the locked
	// start position (see backtracker.GenerateBox): any stray row-0 passage
	// would be silently lost by the SCAD emitter and yield a false solution
	// or an unsolvable box.
	ErrBoxLayout = errors.New("render: maze does not fit the maze-box layout")
)

// Renderer turns a sealed maze descriptor into textual output. Renderers
// never mutate the descriptor; they only consume dimensions, topology, the
// endpoint markers, and the wall queries.
type Renderer interface {
	Render(m *maze.Maze) (string, error)
}

// Registry names, in the order reported by Names.
const (
	NameVerbose  = "verbose"
	NameSuccinct = "succinct"
	NameSCAD     = "scad"
)

// ByName resolves a registry name to its renderer.
// Returns ErrUnknownRenderer for anything outside Names().
func ByName(name string) (Renderer, error) {
	switch name {
	case NameVerbose:
		return Verbose{}, nil
	case NameSuccinct:
		return Succinct{}, nil
	case NameSCAD:
		return SCAD{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}

// Names lists the registered renderer names for CLI help text.
func Names() []string {
	return []string{NameVerbose, NameSuccinct, NameSCAD}
}

// openings is the per-cell wall view shared by the printers.
type openings struct {
	north, east, south, west bool
}

// sealed reports whether no direction is open: the 1×1 maze, or a cell
// masked out of the carve (maze.WithSealedCells).
func (o openings) sealed() bool {
	return !o.north && !o.east && !o.south && !o.west
}

// cellOpenings folds maze.Openings into the four-direction view.
func cellOpenings(m *maze.Maze, c grid.Cell) (openings, error) {
	var o openings
	dirs, err := m.Openings(c)
	if err != nil {
		return o, err
	}
	for _, d := range dirs {
		switch d {
		case grid.North:
			o.north = true
		case grid.East:
			o.east = true
		case grid.South:
			o.south = true
		case grid.West:
			o.west = true
		}
	}

	return o, nil
}

// markerEndFirst returns the center glyph for a cell: '0' end, '*' start,
// '#' sealed, ' ' otherwise. The verbose printer's convention: end outranks
// start when they coincide.
func markerEndFirst(m *maze.Maze, c grid.Cell, o openings) byte {
	switch {
	case c == m.End():
		return '0'
	case c == m.Start():
		return '*'
	case o.sealed():
		return '#'
	default:
		return ' '
	}
}

// markerStartFirst is markerEndFirst with the opposite tie-break: the
// succinct printer lets the start outrank the end when they coincide.
func markerStartFirst(m *maze.Maze, c grid.Cell, o openings) byte {
	switch {
	case c == m.Start():
		return '*'
	case c == m.End():
		return '0'
	case o.sealed():
		return '#'
	default:
		return ' '
	}
}
