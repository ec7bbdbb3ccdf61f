// Package render turns sealed maze descriptors into textual output for the
// two downstream consumers: line printers and the OpenSCAD maze-box
// scripts.
//
// What:
//
//   - Verbose: one 3×3 glyph block per cell, each wall drawn on both sides.
//   - Succinct: shared-border ASCII drawing, two characters per cell.
//   - SCAD: an OpenSCAD import file defining make_maze(i) for the
//     cylindrical maze box (1-indexed coordinates, angular columns).
//   - ByName/Names: registry for CLI renderer selection.
//
// Why:
//
//   - Renderers consume only the descriptor contract — dimensions,
//     topology, endpoint markers, wall queries — so new output targets need
//     no access to generation internals.
//
// Markers: the start cell prints as '*', the end cell as '0', a fully
// sealed cell as '#', anything else as ' '. When start and end coincide
// the verbose printer shows '0' and the succinct printer shows '*'.
//
// Complexity: all renderers are O(rows×cols) time and memory.
//
// Errors:
//
//   - ErrNilMaze: nil descriptor.
//   - ErrUnsupportedTopology: SCAD given a non-cylindrical maze.
//   - ErrBoxLayout: SCAD given a maze with row-0 passages beyond the
//     start's south opening (see backtracker.GenerateBox).
//   - ErrUnknownRenderer: ByName lookup miss.
package render
