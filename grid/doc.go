// Package grid models the cell lattice a maze is carved from: cells
// addressed by (row,col), joined by shared undirected walls, under a
// pluggable topology.
//
// What:
//
//   - Grid wraps a rows×cols lattice with every wall initially present.
//   - Topology selects the adjacency rules: Flat (no wraparound) or
//     Cylindrical (east/west wrap across the column seam; rows never wrap).
//   - Each wall is one shared state per edge — never two per-cell flags —
//     so both endpoints always agree on whether a passage exists.
//   - RemoveWall is the only mutation primitive; everything else is a query.
//
// Why:
//
//   - Maze carving: the generation algorithm only needs Neighbors and
//     RemoveWall to grow a spanning tree.
//   - Topology extension: adjacency is concentrated in one neighbor
//     function keyed by the topology tag, so a toroidal grid is a small,
//     local addition.
//
// Complexity:
//
//   - New / Clone:  O(rows×cols) time and memory.
//   - Neighbors:    O(1) (at most four entries).
//   - WallBetween / RemoveWall: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns below 1.
//   - ErrUnknownTopology: topology tag not Flat or Cylindrical.
//   - ErrCellOutOfBounds: cell coordinate outside the grid.
//   - ErrNotAdjacent: wall query between non-neighboring cells.
//
// Edge cases: under Cylindrical the seam edge exists only for cols > 2 —
// one column would make it a self-loop, two would duplicate the ordinary
// east edge — so degenerate rings degrade to Flat adjacency.
package grid
