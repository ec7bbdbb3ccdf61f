// Package mazegen generates perfect mazes — connected cell layouts with
// exactly one path between any two cells — over flat or cylindrical grids,
// and hands the result to renderers as an immutable descriptor.
//
// What is mazegen?
//
//	A small, deterministic maze-generation library:
//		• grid/        — the cell/wall topology model (flat or cylindrical wrap)
//		• backtracker/ — randomized depth-first spanning-tree carving
//		• maze/        — the sealed, immutable maze descriptor
//		• render/      — ASCII printers and OpenSCAD maze-box emission
//		• cmd/mazegen  — command-line front-end
//
// Why choose mazegen?
//
//   - Reproducible – every random choice flows through an injectable,
//     seedable RNG; a fixed seed regenerates the identical maze
//   - Guaranteed perfect – the carve never introduces a cycle and always
//     spans every cell, so removed walls == cells − 1 by construction
//   - Topology-extensible – adjacency is a single capability keyed by the
//     topology tag; a new topology is one neighbor function away
//   - Pure Go – no cgo, no hidden state, safe for concurrent generations
//
// Quick ASCII example (2×2, flat):
//
//	+---+---+
//	| *     |
//	+---+   +
//	| 0     |
//	+---+---+
//
// Start with backtracker.Generate, then feed the descriptor to a renderer.
package mazegen
