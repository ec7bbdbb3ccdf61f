// Package backtracker defines carve options and sentinel errors for the
// backtracker subpackage of github.com/duh102/mazegen.
package backtracker

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/duh102/mazegen/grid"
)

// Sentinel errors for carve operations.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to Carve.
	ErrNilGrid = errors.New("backtracker: grid is nil")
	// ErrAlreadyCarved indicates the grid already has removed walls; carving
	// on top of existing passages could close a cycle and break the
	// spanning-tree invariant, so Carve only accepts pristine grids.
	ErrAlreadyCarved = errors.New("backtracker: grid already has removed walls")
	// ErrBoxTooSmall indicates dimensions below the maze-box minimum: the
	// layout reserves the start row plus three safe rows, and the resting
	// position needs room to swing sideways around the ring.
	ErrBoxTooSmall = errors.New("backtracker: maze box needs at least 5 rows and 4 columns")
)

// DefaultSeed seeds the carve RNG when neither WithSeed nor WithRand is
// given, keeping the default behavior deterministic.
const DefaultSeed int64 = 1

// carveConfig aggregates all carve knobs. Defaults are deterministic;
// nothing flows through global random state.
type carveConfig struct {
	// RNG for branch choices; nil means "derive from seed".
	rng *rand.Rand
	// Seed for the derived RNG when rng is nil.
	seed int64
	// Carve root override; nil means "let the RNG pick".
	start *grid.Cell
	// Endpoint markers forwarded to the descriptor seal; nil means corner
	// defaults.
	startMark *grid.Cell
	endMark   *grid.Cell
	// Cells to pre-seal: excluded from the carve, all walls kept. The
	// carve root always participates, even when the mask covers it.
	mask func(grid.Cell) bool
}

// Option configures optional carve behavior. Use with Carve(g, opts...) or
// Generate(rows, cols, topo, opts...).
type Option func(*carveConfig)

// WithSeed returns an Option that derives the carve RNG from seed, so a
// fixed (rows, cols, topology, seed) tuple reproduces an identical maze.
// Ignored when WithRand supplies an explicit RNG.
func WithSeed(seed int64) Option {
	return func(c *carveConfig) {
		c.seed = seed
	}
}

// WithRand returns an Option that injects an explicit RNG stream. Passing
// nil has no effect (the seed-derived RNG is retained). The stream is
// consumed in a fixed order, so sharing one across concurrent carves
// forfeits reproducibility, not correctness.
func WithRand(rng *rand.Rand) Option {
	return func(c *carveConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithStart returns an Option that pins the carve root instead of letting
// the RNG choose it. The root only biases traversal order; any root yields
// a valid spanning tree.
func WithStart(start grid.Cell) Option {
	return func(c *carveConfig) {
		s := start
		c.start = &s
	}
}

// WithEndpoints returns an Option that forwards start and end marker cells
// to the sealed descriptor (see maze.WithEndpoints). Only Generate uses it;
// Carve ignores markers since it produces no descriptor.
func WithEndpoints(start, end grid.Cell) Option {
	return func(c *carveConfig) {
		s, e := start, end
		c.startMark = &s
		c.endMark = &e
	}
}

// WithMask returns an Option that pre-seals every cell the mask reports
// true for: the carve never enters them and their walls all stay up. The
// carve root participates regardless of the mask (the maze box masks its
// whole start row yet still carves upward from the start). Passing nil has
// no effect. A mask that disconnects the unmasked region leaves it only
// partially carved, which Generate's descriptor seal then rejects.
func WithMask(mask func(grid.Cell) bool) Option {
	return func(c *carveConfig) {
		if mask != nil {
			c.mask = mask
		}
	}
}

// defaultConfig returns the deterministic defaults and applies opts in
// order, last wins. Complexity: O(len(opts)).
func defaultConfig(opts ...Option) carveConfig {
	cfg := carveConfig{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveRNG returns the injected RNG stream, or one derived from the seed.
func (c carveConfig) resolveRNG() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(c.seed))
}

// resolveRoot returns the pinned carve root, or draws one from the RNG.
// The draw order (row, then col) is part of the determinism contract.
func (c carveConfig) resolveRoot(g *grid.Grid, rng *rand.Rand) (grid.Cell, error) {
	if c.start != nil {
		if !g.Contains(*c.start) {
			return grid.Cell{}, fmt.Errorf("%w: start %s in %d×%d",
				grid.ErrCellOutOfBounds, *c.start, g.Rows(), g.Cols())
		}

		return *c.start, nil
	}

	return grid.Cell{Row: rng.Intn(g.Rows()), Col: rng.Intn(g.Cols())}, nil
}
