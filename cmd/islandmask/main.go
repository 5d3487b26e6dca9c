// Command islandmask writes a radial island alpha mask as a PNG or raw byte
// file.
//
//	islandmask [-seed N] [-width 256] [-height 256] [-preview] [-v] mask.png
//
// 255 is land, 0 is sea. -preview renders the mask with a sea-to-land colour
// ramp instead of greyscale.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/Jajcus/vulkanplay/gridgraph"
	"github.com/Jajcus/vulkanplay/internal/cli"
	"github.com/Jajcus/vulkanplay/island"
	"github.com/Jajcus/vulkanplay/raster"
)

const name = "islandmask"

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
	width := flags.Int("width", 256, "image width")
	height := flags.Int("height", 256, "image height")
	decay := flags.Float64("decay", island.DefaultDecay, "amplitude ratio between harmonics")
	workers := flags.Int("workers", runtime.GOMAXPROCS(0), "goroutines evaluating pixels")
	preview := flags.Bool("preview", false, "colour the PNG sea-to-land")
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
	src, used := seed.Source()
	logger.Printf("seed %d", used)

	mask, err := island.NewMask(*width, *height, src,
		island.WithDecay(*decay),
		island.WithWorkers(*workers),
	)
	if err != nil {
		return err
	}
	logger.Debugf("inner %s", harmonics(mask.Inner))
	logger.Debugf("outer %s", harmonics(mask.Outer))

	grid, err := mask.Render()
	if err != nil {
		return err
	}

	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		return err
	}
	s := gg.Summarize()
	logger.Printf("landmasses=%d land=%d/%d largest=%d", s.Landmasses, s.LandCells, gg.Width*gg.Height, s.Largest)
	if s.Landmasses > 1 {
		if a, b := largestTwo(gg); a >= 0 && b >= 0 {
			if _, cost, err := gg.Bridge(a, b); err == nil {
				logger.Printf("coast split the island; %d sea cells join the two largest landmasses", cost)
			}
		}
	}

	style := raster.StyleGray
	if *preview {
		style = raster.StyleCoast
	}
	fs, file, err := cli.Output(flags.Arg(0))
	if err != nil {
		return err
	}
	if err = raster.Save(fs, file, grid, style, false); err != nil {
		return err
	}
	logger.Debugf("wrote %s", flags.Arg(0))

	return nil
}

// harmonics formats an envelope as "A1=… p1=… A2=… p2=…".
func harmonics(e island.Envelope) string {
	parts := make([]string, 0, 2*island.Harmonics)
	for j, h := range e.Terms() {
		parts = append(parts, fmt.Sprintf("A%d=%.4f p%d=%.4f", j+1, h.Amplitude, j+1, h.Phase))
	}

	return strings.Join(parts, " ")
}

// largestTwo returns the component indices of the two largest landmasses.
func largestTwo(gg *gridgraph.GridGraph) (first, second int) {
	first, second = -1, -1
	comps := gg.ConnectedComponents()
	for i, c := range comps {
		switch {
		case first < 0 || len(c) > len(comps[first]):
			first, second = i, first
		case second < 0 || len(c) > len(comps[second]):
			second = i
		}
	}

	return first, second
}
