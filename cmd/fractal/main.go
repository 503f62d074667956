// fractal renders one registry entry to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/guptarohit/asciigraph"
	"golang.org/x/term"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/ansi"
	"github.com/marben/dist_fractal/palette"
	"github.com/marben/dist_fractal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	var (
		opts      render.Options
		out       string
		list      bool
		preview   bool
		histogram int
	)
	flag.StringVar(&opts.Formula, "f", "mandelbrot", "formula, attractor or texture to draw (see -list)")
	flag.StringVar(&out, "o", "fractal.png", "output PNG file")
	flag.IntVar(&opts.Width, "w", 0, "image width (0: default of the entry)")
	flag.IntVar(&opts.Height, "h", 0, "image height (0: default of the entry)")
	flag.IntVar(&opts.MaxIter, "maxiter", 0, "escape-time iteration budget")
	flag.Float64Var(&opts.Bailout, "bailout", 0, "escape-time bailout radius")
	flag.IntVar(&opts.Multiplier, "mult", 0, "palette index multiplier for escape counts")
	flag.StringVar(&opts.Palette, "palette", "", "palette name: "+strings.Join(palette.Names(), ", "))
	flag.IntVar(&opts.Steps, "steps", 0, "density iterates per trajectory")
	flag.IntVar(&opts.SettleDown, "settle", 0, "density iterates skipped at the start of each trajectory")
	flag.Float64Var(&opts.MaxFactor, "maxfactor", 0, "density contrast factor in (0,1]")
	flag.Uint64Var(&opts.Seed, "seed", 0, "seed for stochastic systems and textures")
	flag.IntVar(&opts.Workers, "workers", 0, "worker goroutines (0: one per CPU)")
	flag.Func("plane", "landmark name or xmin,xmax,ymin,ymax", func(s string) error {
		p, err := fractal.ParsePlane(s)
		opts.Plane = &p
		return err
	})
	flag.Func("c", "fixed parameter re,im of state-map formulas", func(s string) error {
		c, err := fractal.ParseComplex(s)
		opts.C = &c
		return err
	})
	flag.Func("coeffs", "comma separated attractor coefficients", func(s string) (err error) {
		opts.Coeffs, err = fractal.ParseFloats(s)
		return err
	})
	flag.BoolVar(&list, "list", false, "list drawable names and exit")
	flag.BoolVar(&preview, "preview", false, "also draw the image in the terminal")
	flag.IntVar(&histogram, "histogram", 0, "plot an escape-count histogram with this many bins")
	flag.Parse()

	if list {
		for _, name := range render.Names() {
			e, _ := render.Lookup(name)
			fmt.Printf("%-16s %s\n", name, e.Title)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("rendering %s", opts.Formula)
	res, err := render.Render(ctx, opts)
	if err != nil {
		return err
	}

	if err := render.SavePNG(out, res.Image); err != nil {
		return err
	}
	log.Printf("%s saved to %q", res.Entry.Title, out)

	if histogram > 0 && res.Iter != nil {
		maxIter := opts.MaxIter
		if maxIter == 0 {
			maxIter = res.Entry.MaxIter
		}
		bins := res.Iter.Histogram(histogram, maxIter)
		data := make([]float64, len(bins))
		for i, n := range bins {
			data[i] = float64(n)
		}
		fmt.Println(asciigraph.Plot(data, asciigraph.Height(12), asciigraph.Caption("escaped pixels per iteration bin")))
	}

	if preview {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return nil
		}
		cols, rows, err := term.GetSize(fd)
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		fmt.Println(ansi.HalfBlock(ansi.Fit(res.Image, cols, rows-1)))
	}
	return nil
}
