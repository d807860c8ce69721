// Package tui is the interactive terminal front end. Key presses trigger
// flows on tea.Cmd goroutines; state changes reach the model as StateMsg.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shapes/internal/domain"
	"shapes/internal/ui"
	"shapes/internal/ui/console"
)

// StateMsg carries a ui.Store transition into the program.
type StateMsg struct{ State ui.State }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	regionStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Model is the bubbletea model of the shapes screen.
type Model struct {
	ctx     context.Context
	flows   domain.FlowService
	variant domain.Variant
	state   ui.State

	keys    KeyMap
	spinner spinner.Model
	help    help.Model
}

// New returns a model showing initial.
func New(ctx context.Context, flows domain.FlowService, variant domain.Variant, initial ui.State) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		flows:   flows,
		variant: variant,
		state:   initial,
		keys:    DefaultKeyMap,
		spinner: sp,
		help:    help.New(),
	}
}

// State returns the state the model last received.
func (m Model) State() ui.State { return m.state }

func (m Model) Init() tea.Cmd { return m.spinner.Tick }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hello):
			return m, m.hello()
		case key.Matches(msg, m.keys.Shape):
			return m, m.shape()
		}
	case StateMsg:
		m.state = msg.State
		if m.state.Kind == ui.Loading {
			return m, m.spinner.Tick
		}
	case spinner.TickMsg:
		if m.state.Kind != ui.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// The flow reports its outcome through the store, so the cmd yields no message.
func (m Model) hello() tea.Cmd {
	return func() tea.Msg {
		_ = m.flows.Hello(m.ctx)
		return nil
	}
}

func (m Model) shape() tea.Cmd {
	return func() tea.Msg {
		_, _ = m.flows.Shape(m.ctx)
		return nil
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("shapes · " + m.variant.String()))
	b.WriteString("\n")

	var body string
	switch {
	case m.state.Visible(ui.RegionSpinner):
		body = m.spinner.View() + " loading"
	case m.state.Visible(ui.RegionShape):
		body = console.Line(m.state) + "\n\n" + bigShape(m.state.Shape)
	default:
		body = console.Line(m.state)
	}
	b.WriteString(regionStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func bigShape(shape string) string {
	g := console.Glyph(shape)
	switch shape {
	case "rectangle":
		return strings.Repeat(g, 8)
	case "square":
		row := strings.Repeat(g, 4)
		return strings.Join([]string{row, row}, "\n")
	default:
		return g
	}
}

// Run starts the TUI, forwarding store transitions to it until the user quits.
func Run(ctx context.Context, flows domain.FlowService, store *ui.Store, variant domain.Variant, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(ctx, flows, variant, store.Current()), opts...)
	cancel := store.Subscribe(func(_, next ui.State) {
		p.Send(StateMsg{State: next})
	})
	defer cancel()
	_, err := p.Run()
	return err
}
