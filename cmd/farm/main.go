// farm coordinates a distributed escape-time render. Workers connect over
// TCP or websocket and render tiles until the image is complete; the result
// is written as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/farm"
	"github.com/marben/dist_fractal/render"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		opts     render.Options
		out      string
		tcpAddr  string
		httpAddr string
		local    int
	)
	flag.StringVar(&opts.Formula, "f", "mandelbrot", "escape-time formula")
	flag.IntVar(&opts.Width, "w", 1920, "image width")
	flag.IntVar(&opts.Height, "h", 1080, "image height")
	flag.IntVar(&opts.MaxIter, "maxiter", 0, "iteration budget")
	flag.StringVar(&opts.Palette, "palette", "", "palette name")
	flag.StringVar(&out, "o", "fractal.png", "output PNG file")
	flag.StringVar(&tcpAddr, "tcp", envOr("FRACTAL_FARM_ADDR", ":8081"), "TCP address workers connect to")
	flag.StringVar(&httpAddr, "http", ":8080", "HTTP address of the /ws websocket endpoint (empty disables)")
	flag.IntVar(&local, "local", 0, "in-process workers to start")
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
	flag.Parse()

	job, entry, err := render.Job(opts)
	if err != nil {
		return err
	}
	sched, err := farm.NewScheduler(job)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// TCP
	log.Printf("tcp listening on %s", tcpAddr)
	tcpListener, err := net.Listen("tcp", tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}
	go func() {
		if err := sched.Accept(ctx, tcpListener); err != nil {
			log.Printf("accept tcp: %v", err)
		}
	}()

	// WEBSOCKET
	if httpAddr != "" {
		wsListener := farm.NewWSListener(ctx, httpAddr+"/ws")
		mux := http.NewServeMux()
		mux.Handle("/ws", wsListener)
		srv := &http.Server{
			Addr:              httpAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("httpServer: %v", err)
			}
		}()
		defer srv.Close()
		go func() {
			if err := sched.Accept(ctx, wsListener); err != nil {
				log.Printf("accept ws: %v", err)
			}
		}()
		log.Printf("websocket endpoint on ws://localhost%s/ws", httpAddr)
	}

	for i := range local {
		go func() {
			r := render.Local{OnTileRender: func(tile image.Rectangle) { log.Printf("local %d rendering tile: %s", i, tile) }}
			if err := sched.Render(ctx, r); err != nil {
				log.Printf("local worker %d: %v", i, err)
			}
		}()
	}

	log.Printf("waiting for workers to render %s %dx%d", entry.Name, job.Region.Width, job.Region.Height)
	counts, err := sched.Wait(ctx)
	if err != nil {
		return err
	}
	stop()

	img, err := render.Colorize(counts, entry, opts)
	if err != nil {
		return err
	}
	if err := render.SavePNG(out, img); err != nil {
		return err
	}
	log.Printf("fully rendered file saved to %q", out)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
