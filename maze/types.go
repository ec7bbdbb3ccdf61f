// Package maze defines the descriptor type, seal options, and sentinel
// errors for the maze subpackage of github.com/duh102/mazegen.
package maze

import (
	"errors"

	"github.com/duh102/mazegen/grid"
)

// Sentinel errors for descriptor construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrIncompleteMaze indicates the grid's removed walls do not yet form a
	// spanning tree (removed != cells-1), so no descriptor can be sealed.
	ErrIncompleteMaze = errors.New("maze: removed walls do not form a spanning tree")
)

// sealConfig carries optional descriptor metadata applied at New time.
type sealConfig struct {
	// Endpoint overrides; nil means "use the default corner".
	start *grid.Cell
	end   *grid.Cell
	// Cells deliberately left outside the spanning tree (all walls up).
	sealed int
}

// Option configures optional descriptor metadata. Use with New(g, opts...).
type Option func(*sealConfig)

// WithEndpoints returns an Option that records start and end marker cells
// on the descriptor. Renderers draw them as the entry and goal positions.
// Defaults when absent: start (0,0), end (rows-1,cols-1).
func WithEndpoints(start, end grid.Cell) Option {
	return func(c *sealConfig) {
		s, e := start, end
		c.start = &s
		c.end = &e
	}
}

// WithSealedCells returns an Option declaring that n cells were
// deliberately sealed off during the carve (backtracker.WithMask) and are
// excluded from the spanning tree. New then expects cells-n-1 removed walls
// instead of cells-1. Negative n is ignored.
func WithSealedCells(n int) Option {
	return func(c *sealConfig) {
		if n > 0 {
			c.sealed = n
		}
	}
}
