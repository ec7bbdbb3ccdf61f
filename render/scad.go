package render

import (
	"fmt"
	"strings"

	"github.com/duh102/mazegen/grid"
	"github.com/duh102/mazegen/maze"
)

// scadPreamble is the fixed header the maze_box OpenSCAD scripts expect at
// the top of an import file.
const scadPreamble = `//-------------------------------------------------------
// Import file for maze_box.scad or maze_box_inv.scad
// This file defines the maze.
//-------------------------------------------------------
// This file must define the X and Y grid sizes
// of the maze, and define a routine called
// "make_maze()".
//------------------------------------------------
//
// Vertical lines are done with linear_extrude using a circle
// Horizontal lines are done with rotate_extrude
// Spheres cap all intersections except T-intersects
//
// Requirements:
//   Maze endpoint must be put at y = 1
//   Exit must be at y = ygrid.
//   No paths other than exit higher than y = ygrid - 2
//
// Recommendations:
//   No paths other than exit higher than y = ygrid - 3
//           (otherwise the lid can be pulled off with a
//           bit of twisting)
//   No paths other than endline at y = 1 (otherwise you
//           get a false solution)
//
//---------------------------------------------------------
`

// scadIndent is the body indentation inside make_maze().
const scadIndent = "   "

// SCAD emits the maze as an OpenSCAD import file defining make_maze(i) for
// the cylindrical maze-box scripts. The column index is an angular
// coordinate: lines may run past xgrid across the seam, which the scripts
// wrap structurally. Rows map to the box axis, so only Cylindrical mazes
// can be expressed.
type SCAD struct{}

// Render implements Renderer.
//
// The emitted coordinates are 1-indexed (the OpenSCAD scripts' convention)
// while the maze is 0-indexed, so every coordinate is shifted by one.
// Row 0 carries only the locked start position and its resting endline; the
// maze body is emitted from row 1 upward. Mazes must therefore keep row 0
// sealed except for the start cell's south opening — the shape
// backtracker.GenerateBox produces — or the emitter would drop passages
// that exist in the descriptor.
//
// Error Conditions:
//   - ErrNilMaze:             m is nil.
//   - ErrUnsupportedTopology: m is not Cylindrical.
//   - ErrBoxLayout:           row 0 has passages beyond the start's south
//     opening, or the start is not on row 0.
//
// Complexity: O(rows×cols) time and memory.
func (SCAD) Render(m *maze.Maze) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}
	if m.Topology() != grid.Cylindrical {
		return "", fmt.Errorf("%w: maze box needs %s, got %s",
			ErrUnsupportedTopology, grid.Cylindrical, m.Topology())
	}
	if err := boxLayout(m); err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(scadPreamble)
	out.WriteByte('\n')
	fmt.Fprintf(&out, "// Maze grid size in X (units)\nxgrid = %d;\n\n", m.Cols())
	fmt.Fprintf(&out, "// Maze grid size in Y (units)\nygrid = %d;\n\n", m.Rows())
	out.WriteString("module make_maze(i) {\n")

	body := scadStart(m)
	body = append(body, "// Maze body")

	// Only east and south need emitting: west/north were covered by the
	// previous cell or row, and the seam line simply runs past xgrid.
	var lines, intersections []string
	for r := 1; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			o, err := cellOpenings(m, grid.Cell{Row: r, Col: c})
			if err != nil {
				return "", err
			}
			if o.sealed() {
				continue
			}
			intersections = append(intersections, scadPoint(c, r))
			if o.east {
				lines = append(lines, scadLine(c, r, c+1, r))
			}
			if o.south {
				lines = append(lines, scadLine(c, r, c, r+1))
			}
		}
	}
	body = append(body, "// Lines")
	body = append(body, lines...)
	body = append(body, "// Intersections")
	body = append(body, intersections...)

	for _, l := range body {
		out.WriteString(scadIndent)
		out.WriteString(l)
		out.WriteByte('\n')
	}
	out.WriteByte('}')

	return out.String(), nil
}

// boxLayout verifies row 0 carries nothing but the locked start position:
// the start sits on row 0 and opens only south, every other row-0 cell is
// fully sealed. The emitter never draws row-0 passages, so anything else
// there would vanish from the physical box.
func boxLayout(m *maze.Maze) error {
	start := m.Start()
	if start.Row != 0 {
		return fmt.Errorf("%w: start %s not on row 0", ErrBoxLayout, start)
	}
	for c := 0; c < m.Cols(); c++ {
		cell := grid.Cell{Row: 0, Col: c}
		o, err := cellOpenings(m, cell)
		if err != nil {
			return err
		}
		if cell == start {
			if o.north || o.east || o.west || !o.south {
				return fmt.Errorf("%w: start %s must open only south", ErrBoxLayout, cell)
			}
			continue
		}
		if !o.sealed() {
			return fmt.Errorf("%w: row 0 cell %s is open", ErrBoxLayout, cell)
		}
	}

	return nil
}

// scadStart emits the locked start position: the approach line, the wide
// resting endline beside it, the carve up to the first maze row, and
// sphere caps on the three junctions. Coordinates may run out of bounds;
// the OpenSCAD scripts wrap the angular axis.
func scadStart(m *maze.Maze) []string {
	start := m.Start()
	x, y := start.Col, start.Row

	// Swing the resting position toward the wider side of the ring.
	approach, end := x+1, x+3
	if 2*x >= m.Cols() {
		approach, end = x-1, x-3
	}

	return []string{
		fmt.Sprintf("// Beginning (locked) position (%d, %d)", x+1, y+1),
		scadLine(x, y, approach, y),
		scadEndline(end, approach, y),
		scadLine(x, y, x, y+1),
		scadPoint(x, y),
		scadPoint(end, y),
		scadPoint(approach, y),
	}
}

// scadLine formats a maze_line call between two grid positions, shifted to
// the scripts' 1-indexed coordinates.
func scadLine(x1, y1, x2, y2 int) string {
	return fmt.Sprintf("maze_line(i, %d, %d, %d, %d);", x1+1, y1+1, x2+1, y2+1)
}

// scadPoint formats a zero-length maze_line, which the scripts render as a
// sphere-capped intersection.
func scadPoint(x, y int) string {
	return scadLine(x, y, x, y)
}

// scadEndline formats the horizontal resting line at the locked position.
func scadEndline(x1, x2, y int) string {
	lo, hi := x1, x2
	if lo > hi {
		lo, hi = hi, lo
	}

	return fmt.Sprintf("maze_endline(i, %d, %d, %d);", lo+1, hi+1, y+1)
}
