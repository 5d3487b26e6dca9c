// Command diamondsquare writes a diamond-square heightmap as a PNG or raw
// byte file.
//
//	diamondsquare [-seed N] [-size 256] [-tint] [-v] heightmap.png
//
// The size is rounded up to a power of two. PNG output is greyscale unless
// -tint is given; .raw output is one byte per cell, row-major.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Jajcus/vulkanplay/gridgraph"
	"github.com/Jajcus/vulkanplay/heightmap"
	"github.com/Jajcus/vulkanplay/internal/cli"
	"github.com/Jajcus/vulkanplay/material"
	"github.com/Jajcus/vulkanplay/matrix"
	"github.com/Jajcus/vulkanplay/raster"
)

const name = "diamondsquare"

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	var seed cli.Seed
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Var(&seed, "seed", "random seed (default: fresh entropy)")
	size := flags.Int("size", 256, "image size (rounded up to a power of 2)")
	magnitude := flags.Float64("magnitude", heightmap.DefaultMagnitude, "initial displacement magnitude")
	reduction := flags.Float64("reduction", heightmap.DefaultReduction, "magnitude factor per level")
	tint := flags.Bool("tint", false, "colour the PNG by terrain material")
	crop := flags.Bool("crop", true, "drop the duplicated last row and column")
	sea := flags.Float64("sea", material.DefaultThresholds().Water, "water level for the landmass summary")
	verbose := flags.Bool("v", false, "verbose logging")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %s [flags] filename\n", name)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errors.New("exactly one output filename required")
	}

	logger := cli.Logger(stderr, name, *verbose)
	n := heightmap.RoundUpSize(*size)
	if n != *size {
		logger.Debugf("size %d rounded up to %d", *size, n)
	}
	src, used := seed.Source()
	logger.Printf("seed %d", used)

	grid, err := heightmap.Generate(n, src,
		heightmap.WithMagnitude(*magnitude),
		heightmap.WithReduction(*reduction),
	)
	if err != nil {
		return err
	}

	// Analyse exactly the window that gets written.
	view := grid
	if *crop {
		if view, err = matrix.Crop(grid, n, n); err != nil {
			return err
		}
	}

	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = *sea
	gg, err := gridgraph.NewGridGraph(view, opts)
	if err != nil {
		return err
	}
	s := gg.Summarize()
	logger.Printf("landmasses=%d land=%d/%d largest=%d", s.Landmasses, s.LandCells, gg.Width*gg.Height, s.Largest)

	if hist, err := material.DefaultThresholds().Survey(view); err == nil {
		for m := material.Water; int(m) < material.Count; m++ {
			logger.Debugf("%-5s %5.1f%%", m, 100*hist.Fraction(m))
		}
	}

	style := raster.StyleGray
	if *tint {
		style = raster.StyleTint
	}
	fs, file, err := cli.Output(flags.Arg(0))
	if err != nil {
		return err
	}
	if err = raster.Save(fs, file, view, style, false); err != nil {
		return err
	}
	logger.Debugf("wrote %s", flags.Arg(0))

	return nil
}
