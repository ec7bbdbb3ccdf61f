// Command mazegen generates a perfect maze and prints it through one of
// the registered renderers.
//
// Usage:
//
//	mazegen -rows 10 -cols 12 -topology cylindrical -seed 42 -printer scad -o maze.scad
//
// When -seed is omitted a seed is drawn from the clock and reported on
// stderr, so any run can be regenerated exactly.
//
// The scad printer targets the physical maze box, so it generates in the
// maze-box layout (row 0 reserved for the locked start, safe rows under
// the lid) and requires the cylindrical topology.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/duh102/mazegen/backtracker"
	"github.com/duh102/mazegen/grid"
	"github.com/duh102/mazegen/maze"
	"github.com/duh102/mazegen/render"
)

func main() {
	rows := flag.Int("rows", 10, "maze rows (positive)")
	cols := flag.Int("cols", 10, "maze columns (positive)")
	topology := flag.String("topology", grid.Flat.String(),
		"grid topology: flat|cylindrical")
	seed := flag.Int64("seed", 0, "RNG seed; omit for a clock-drawn seed")
	printer := flag.String("printer", render.NameSuccinct,
		"output renderer: "+strings.Join(render.Names(), "|"))
	outPath := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	if err := run(*rows, *cols, *topology, *printer, *outPath, *seed, seedSet); err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(1)
	}
}

func run(rows, cols int, topology, printer, outPath string, seed int64, seedSet bool) error {
	topo, err := grid.ParseTopology(topology)
	if err != nil {
		return err
	}
	renderer, err := render.ByName(printer)
	if err != nil {
		return err
	}
	if !seedSet {
		seed = time.Now().UnixNano()
		fmt.Fprintf(os.Stderr, "seed: %d\n", seed)
	}

	var m *maze.Maze
	if printer == render.NameSCAD {
		if topo != grid.Cylindrical {
			return fmt.Errorf("%w: the scad printer needs -topology %s",
				render.ErrUnsupportedTopology, grid.Cylindrical)
		}
		m, err = backtracker.GenerateBox(rows, cols, backtracker.WithSeed(seed))
	} else {
		m, err = backtracker.Generate(rows, cols, topo, backtracker.WithSeed(seed))
	}
	if err != nil {
		return err
	}
	out, err := renderer.Render(m)
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, []byte(out+"\n"), 0o644)
	}
	_, err = fmt.Println(out)

	return err
}
