// Package backtracker implements randomized depth-first spanning-tree
// carving over a grid.Grid — the classic "recursive backtracker" — and
// seals the result into a maze.Maze descriptor.
//
// What:
//
//   - Carve(g, opts...): grow a random spanning tree in place over a
//     pristine grid, one removed wall per newly reached cell.
//   - Generate(rows, cols, topo, opts...): grid construction, carve, and
//     descriptor seal in one call.
//   - GenerateBox(rows, cols, opts...): a cylindrical maze shaped for the
//     physical maze box — row 0 sealed except the start's south opening,
//     the top three rows sealed except the exit column.
//   - Explicit stack loop, never recursion, so depth is bounded by memory
//     rather than the call stack on large grids.
//
// Why:
//
//   - Perfect mazes: a wall is only removed toward a cell outside the tree,
//     so the passage graph is connected and acyclic by construction —
//     exactly cells-1 walls removed, every cell reachable.
//   - Reproducibility: every random choice flows through one injectable RNG
//     (WithSeed / WithRand); a fixed seed regenerates the identical maze.
//
// Complexity:
//
//   - Carve / Generate: O(rows×cols) time, O(rows×cols) memory.
//
// Options:
//
//   - WithSeed(seed)            derive the RNG from seed (default seed 1).
//   - WithRand(rng)             inject an explicit RNG stream.
//   - WithStart(cell)           pin the carve root.
//   - WithEndpoints(start, end) forward descriptor markers to the seal.
//   - WithMask(fn)              pre-seal cells the carve must not enter
//     (the root always participates; Generate declares the sealed count
//     to the descriptor via maze.WithSealedCells).
//
// Errors:
//
//   - ErrNilGrid:                  nil grid passed to Carve.
//   - ErrAlreadyCarved:            grid has removed walls already.
//   - ErrBoxTooSmall:              GenerateBox below 5 rows or 4 columns.
//   - grid.ErrInvalidDimensions:   propagated by Generate from grid.New.
//   - grid.ErrCellOutOfBounds:     carve root or endpoint outside the grid.
//
// Distribution note: depth-first carving is unbiased in traversal order but
// does NOT sample uniformly over all spanning trees — it favors long
// corridors. Consumers needing the uniform distribution should use a
// loop-erased random walk (Wilson's algorithm) instead; the descriptor
// contract would be unchanged.
package backtracker
