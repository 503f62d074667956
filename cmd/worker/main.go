// worker lends its CPU to a farm coordinator: it connects, then renders the
// tiles the coordinator asks for until the job is done.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/marben/irpc"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/farm"
	"github.com/marben/dist_fractal/render"
)

func main() {
	log.Printf("Starting worker...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	def := "tcp://localhost:8081"
	if env := os.Getenv("FRACTAL_COORDINATOR"); env != "" {
		def = env
	}
	addr := flag.String("addr", def, "coordinator address, tcp://host:port or ws://host:port/ws")
	quiet := flag.Bool("q", false, "do not log every tile")
	flag.Parse()

	// Step 1: Connect to the coordinator
	log.Printf("Connecting to coordinator on %s...", *addr)
	conn, err := dial(*addr)
	if err != nil {
		return fmt.Errorf("failed to connect to coordinator: %w", err)
	}
	defer conn.Close()

	// Step 2: Create the renderer service, called by the coordinator to render tiles on our CPU
	renderer := render.Local{}
	if !*quiet {
		renderer.OnTileRender = func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) }
	}
	rendererService := fractal.NewTileRendererIrpcService(renderer)
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(rendererService))

	// Step 3: Serve until the coordinator hangs up
	<-ep.Context().Done()
	if cause := context.Cause(ep.Context()); !errors.Is(cause, irpc.ErrEndpointClosedByCounterpart) {
		return fmt.Errorf("endpoint: %w", cause)
	}

	log.Printf("Coordinator closed the connection, job done")
	return nil
}

func dial(addr string) (net.Conn, error) {
	switch {
	case strings.HasPrefix(addr, "ws://"), strings.HasPrefix(addr, "wss://"):
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return farm.DialWS(ctx, addr)
	default:
		return net.Dial("tcp", strings.TrimPrefix(addr, "tcp://"))
	}
}
