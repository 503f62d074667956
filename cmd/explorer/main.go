// explorer runs the interactive parameter explorer in the terminal, or
// serves it to SSH clients with -ssh.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gliderlabs/ssh"
	"golang.org/x/term"

	"github.com/marben/dist_fractal/explorer"
	"github.com/marben/dist_fractal/explorer/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	var (
		cfg     explorer.Config
		sshAddr string
		hostKey string
	)
	flag.StringVar(&cfg.Family, "f", "mandelbrot", "parameter-map formula with a state-map pair")
	flag.IntVar(&cfg.Size, "size", explorer.DefaultSize, "edge of both maps in pixels")
	flag.IntVar(&cfg.MaxIter, "maxiter", explorer.DefaultMaxIter, "initial iteration budget")
	flag.StringVar(&cfg.Palette, "palette", "", "initial palette")
	flag.StringVar(&sshAddr, "ssh", "", "serve the explorer over SSH on this address, e.g. :2222")
	flag.StringVar(&hostKey, "hostkey", "host_key", "SSH host key file, generated if missing")
	flag.Parse()

	x, err := explorer.New(cfg)
	if err != nil {
		return err
	}
	if sshAddr != "" {
		if port := os.Getenv("PORT"); port != "" {
			sshAddr = ":" + port
		}
		return serveSSH(cfg, sshAddr, hostKey)
	}

	w, h := 80, 24
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if cols, rows, err := term.GetSize(fd); err == nil {
			w, h = cols, rows
		}
	}
	p := tea.NewProgram(tui.New(context.Background(), x, w, h, nil), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// serveSSH gives every session its own explorer.
func serveSSH(cfg explorer.Config, addr, hostKey string) error {
	log.SetFlags(log.Ltime | log.Lshortfile)
	if err := ensureHostKey(hostKey); err != nil {
		return fmt.Errorf("host key: %w", err)
	}

	server := &ssh.Server{
		Addr: addr,
		Handler: func(sess ssh.Session) {
			handleSession(sess, cfg)
		},
	}
	if err := server.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", addr)
	return server.ListenAndServe()
}

func handleSession(sess ssh.Session, cfg explorer.Config) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		sess.Exit(1)
		return
	}
	x, err := explorer.New(cfg)
	if err != nil {
		fmt.Fprintln(sess, err)
		sess.Exit(1)
		return
	}

	log.Printf("session from %s (%s)", sess.RemoteAddr(), sess.User())
	defer log.Printf("session closed: %s", sess.RemoteAddr())

	renderer := lipgloss.NewRenderer(sess)
	m := tui.New(sess.Context(), x, ptyReq.Window.Width, ptyReq.Window.Height, renderer)
	p := tea.NewProgram(m, tea.WithInput(sess), tea.WithOutput(sess), tea.WithAltScreen())

	go func() {
		for win := range winCh {
			p.Send(tea.WindowSizeMsg{Width: win.Width, Height: win.Height})
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("session %s: %v", sess.RemoteAddr(), err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err := pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
