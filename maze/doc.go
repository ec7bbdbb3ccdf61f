// Package maze provides the immutable Maze descriptor — the only artifact
// whose lifetime extends past a generation run.
//
// What:
//
//   - Maze seals a fully carved grid: dimensions, topology tag, endpoint
//     markers, and the final wall state behind read-only queries.
//   - IsPassage(a, b) is the renderer contract: the inverse of wall
//     presence between two adjacent cells.
//   - Openings(c) lists a cell's open directions for glyph lookup.
//
// Why:
//
//   - Renderers (ASCII printers, OpenSCAD emission) need a stable view that
//     cannot drift while they draw; New takes a defensive deep copy.
//   - The seal is also the invariant gate: New refuses any grid whose
//     removed-wall count is not exactly cells-1 — shifted by
//     WithSealedCells for deliberately sealed-off cells — so a descriptor
//     always describes a perfect maze over its participating cells.
//
// Complexity:
//
//   - New:       O(rows×cols) (defensive copy + count check).
//   - IsPassage: O(1).
//   - Openings:  O(1) (at most four directions).
//
// Errors:
//
//   - ErrNilGrid: nil grid passed to New.
//   - ErrIncompleteMaze: descriptor requested before a spanning tree exists.
//   - grid.ErrNotAdjacent / grid.ErrCellOutOfBounds: propagated on queries.
package maze
