// Package render draws sealed mazes as text: two ASCII printers suitable
// for terminals and dot-matrix drivers, and an OpenSCAD emitter for the
// cylindrical maze box.
package render

import (
	"strings"

	"github.com/duh102/mazegen/grid"
	"github.com/duh102/mazegen/maze"
)

// Verbose draws every cell as an independent 3×3 glyph block, so each
// shared wall appears twice (once per side). Bulky but unambiguous —
// useful when eyeballing wall state per cell.
type Verbose struct{}

// Render implements Renderer.
// Complexity: O(rows×cols) time and memory.
func (Verbose) Render(m *maze.Maze) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}

	var out strings.Builder
	for r := 0; r < m.Rows(); r++ {
		// Three physical lines per cell row.
		blocks := make([][3]string, 0, m.Cols())
		for c := 0; c < m.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			o, err := cellOpenings(m, cell)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, verboseBlock(o, markerEndFirst(m, cell, o)))
		}
		if r > 0 {
			out.WriteByte('\n')
		}
		for line := 0; line < 3; line++ {
			if line > 0 {
				out.WriteByte('\n')
			}
			for _, b := range blocks {
				out.WriteString(b[line])
			}
		}
	}

	return out.String(), nil
}

// verboseBlock builds one cell's 3×3 glyphs: borders on closed sides,
// gaps on open ones, the marker in the center.
func verboseBlock(o openings, center byte) [3]string {
	glyphs := [3][3]byte{
		{'+', '-', '+'},
		{'|', center, '|'},
		{'+', '-', '+'},
	}
	if o.north {
		glyphs[0][1] = ' '
	}
	if o.west {
		glyphs[1][0] = ' '
	}
	if o.east {
		glyphs[1][2] = ' '
	}
	if o.south {
		glyphs[2][1] = ' '
	}

	return [3]string{string(glyphs[0][:]), string(glyphs[1][:]), string(glyphs[2][:])}
}

// Succinct draws the maze with shared borders: one "+-"-style border line
// between cell rows and "|" separators within them, two characters per
// cell. The compact form a printer driver would feed its line buffer.
type Succinct struct{}

// Render implements Renderer.
// Complexity: O(rows×cols) time and memory.
func (Succinct) Render(m *maze.Maze) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}

	var out strings.Builder
	var lastRow []openings
	for r := 0; r < m.Rows(); r++ {
		row := make([]openings, m.Cols())
		for c := 0; c < m.Cols(); c++ {
			o, err := cellOpenings(m, grid.Cell{Row: r, Col: c})
			if err != nil {
				return "", err
			}
			row[c] = o
		}

		// Border line above this row: open north walls leave gaps.
		for _, o := range row {
			if o.north {
				out.WriteString("+ ")
			} else {
				out.WriteString("+-")
			}
		}
		out.WriteString("+\n")

		// Cell line: west separators plus markers. The trailing border is
		// the last cell's east wall — across a cylindrical seam it is the
		// same shared wall as column 0's west side.
		for c, o := range row {
			if o.west {
				out.WriteByte(' ')
			} else {
				out.WriteByte('|')
			}
			out.WriteByte(markerStartFirst(m, grid.Cell{Row: r, Col: c}, o))
		}
		if row[len(row)-1].east {
			out.WriteByte(' ')
		} else {
			out.WriteByte('|')
		}
		out.WriteByte('\n')

		lastRow = row
	}

	// Closing border from the last row's south walls (always solid — rows
	// never wrap — but derived rather than assumed).
	for _, o := range lastRow {
		if o.south {
			out.WriteString("+ ")
		} else {
			out.WriteString("+-")
		}
	}
	out.WriteByte('+')

	return out.String(), nil
}
