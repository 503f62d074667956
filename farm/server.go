package farm

import (
	"context"
	"errors"
	"log"
	"net"

	"github.com/marben/irpc"

	fractal "github.com/marben/dist_fractal"
)

// Accept plugs every connection arriving on l into the scheduler as a
// remote renderer. Workers register a fractal.TileRendererIrpcService on
// their endpoint. Accept returns when l is closed or ctx is done.
func (s *Scheduler) Accept(ctx context.Context, l net.Listener) error {
	// irpc server with onConnect hook to plug workers into rendering
	srv := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		go func() {
			log.Printf("got connection from: %s", ep.RemoteAddr())
			// hang up once the job is done, so the worker exits
			defer ep.Close()

			// each worker provides us with a TileRenderer over the connection
			client, err := fractal.NewTileRendererIrpcClient(ep)
			if err != nil {
				log.Printf("err: new tile renderer client: %v", err)
				return
			}
			if err := s.Render(ctx, client); err != nil {
				log.Printf("err: render on client %q: %v", ep.RemoteAddr(), err)
			}
		}()
	}))

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	err := srv.Serve(l)
	if errors.Is(err, irpc.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}
