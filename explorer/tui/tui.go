// Package tui is a terminal front end for the explorer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marben/dist_fractal/ansi"
	"github.com/marben/dist_fractal/explorer"
	"github.com/marben/dist_fractal/palette"
)

const (
	fastStep      = 10
	iterationStep = 10
	// status and help lines below the maps
	chrome = 2
)

type styles struct {
	status lipgloss.Style
	busy   lipgloss.Style
	help   lipgloss.Style
	err    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		status: r.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		busy:   r.NewStyle().Foreground(lipgloss.Color("205")),
		help:   r.NewStyle().Foreground(lipgloss.Color("240")),
		err:    r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// frameMsg carries the result of a background render.
type frameMsg struct {
	frame *explorer.Frame
	err   error
}

// Model is the bubbletea model. The explorer is shared, the rest is
// copied with every update.
type Model struct {
	ctx    context.Context
	x      *explorer.Explorer
	state  explorer.State
	frame  *explorer.Frame
	err    error
	width  int
	height int
	styles styles
}

// New returns a model for x sized for a width × height terminal. A nil
// renderer uses lipgloss's default.
func New(ctx context.Context, x *explorer.Explorer, width, height int, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Model{
		ctx:    ctx,
		x:      x,
		state:  x.Initial(),
		width:  width,
		height: height,
		styles: newStyles(r),
	}
}

// State returns the current explorer state.
func (m Model) State() explorer.State { return m.state }

func (m Model) Init() tea.Cmd {
	return m.request()
}

// request asks for a frame of the current state in the background.
func (m Model) request() tea.Cmd {
	x, ctx, s := m.x, m.ctx, m.state
	v := x.Request(s)
	return func() tea.Msg {
		f, err := x.Render(ctx, s, v)
		return frameMsg{frame: f, err: err}
	}
}

// keyEvent maps a key to an explorer event.
func keyEvent(key string) (explorer.Event, bool) {
	switch key {
	case "up", "w":
		return explorer.Move{DY: -1}, true
	case "down", "s":
		return explorer.Move{DY: 1}, true
	case "left", "a":
		return explorer.Move{DX: -1}, true
	case "right", "d":
		return explorer.Move{DX: 1}, true
	case "shift+up", "W":
		return explorer.Move{DY: -fastStep}, true
	case "shift+down", "S":
		return explorer.Move{DY: fastStep}, true
	case "shift+left", "A":
		return explorer.Move{DX: -fastStep}, true
	case "shift+right", "D":
		return explorer.Move{DX: fastStep}, true
	case "p":
		return explorer.CyclePalette{Delta: 1}, true
	case "P":
		return explorer.CyclePalette{Delta: -1}, true
	case "+", "=":
		return explorer.AdjustIterations{Delta: iterationStep}, true
	case "-", "_":
		return explorer.AdjustIterations{Delta: -iterationStep}, true
	}
	return nil, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		default:
			ev, ok := keyEvent(key)
			if !ok {
				return m, nil
			}
			next, change := explorer.Apply(m.state, ev, m.x.Bounds())
			if !change.Any() {
				return m, nil
			}
			m.state = next
			return m, m.request()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		switch {
		case errors.Is(msg.err, explorer.ErrStale):
		case msg.err != nil:
			m.err = msg.err
		case m.x.Commit(msg.frame):
			m.frame, m.err = msg.frame, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	if m.frame != nil {
		cols := max(1, (m.width-1)/2)
		rows := max(1, m.height-chrome)
		left := ansi.HalfBlock(ansi.Fit(m.frame.ParamImage, cols, rows))
		right := ansi.HalfBlock(ansi.Fit(m.frame.StateImage, cols, rows))
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.status())
	sb.WriteByte('\n')
	if m.err != nil {
		sb.WriteString(m.styles.err.Render(m.err.Error()))
	} else {
		sb.WriteString(m.styles.help.Render("arrows/wasd move (shift ×10)  p/P palette  +/- iterations  q quit"))
	}
	return sb.String()
}

func (m Model) status() string {
	param, state := m.x.Names()
	c := m.x.Parameter(m.state.Selected)
	line := fmt.Sprintf("%s → %s  c=%.5f%+.5fi  iter=%d  palette=%s",
		param, state, real(c), imag(c), m.state.MaxIter, palette.Names()[m.state.Palette])
	s := m.styles.status.Render(line)
	if phase := m.x.Phase(); phase != explorer.Idle {
		s += "  " + m.styles.busy.Render(phase.String())
	}
	return s
}
