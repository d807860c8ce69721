// Package console renders ui states as styled single lines for one-shot
// commands.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"shapes/internal/ui"
)

// HelloText is shown in the hello region.
const HelloText = "Hello, World!"

var (
	idleStyle     = lipgloss.NewStyle().Faint(true)
	loadingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helloStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	confusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	shapeStyles = map[string]lipgloss.Style{
		"circle":    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"rectangle": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"square":    lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		"triangle":  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
	shapeGlyphs = map[string]string{
		"circle":    "●",
		"rectangle": "▬",
		"square":    "■",
		"triangle":  "▲",
	}
)

// Glyph returns the symbol drawn for shape, or "?" for unknown shapes.
func Glyph(shape string) string {
	if g, ok := shapeGlyphs[shape]; ok {
		return g
	}
	return "?"
}

// Shape renders the shape region.
func Shape(shape string) string {
	st, ok := shapeStyles[shape]
	if !ok {
		st = lipgloss.NewStyle()
	}
	return st.Render(Glyph(shape) + " " + shape)
}

// Line renders the visible regions of s on one line.
func Line(s ui.State) string {
	var out string
	switch s.Kind {
	case ui.Idle:
		out = idleStyle.Render("ready")
	case ui.Loading:
		out = loadingStyle.Render("loading...")
	case ui.Hello:
		out = helloStyle.Render(HelloText)
	case ui.ShapeDisplayed:
		out = Shape(s.Shape)
	case ui.Confused:
		out = confusedStyle.Render("Confused: " + s.Message)
	}
	if s.Visible(ui.RegionSuccess) {
		out += " " + successStyle.Render("(success)")
	}
	return out
}

// Printer writes one line per state transition.
type Printer struct {
	W io.Writer
}

// Attach subscribes p to store and returns the cancel function.
func (p Printer) Attach(store *ui.Store) (cancel func()) {
	return store.Subscribe(func(_, next ui.State) {
		fmt.Fprintln(p.W, Line(next))
	})
}
