package views

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorInfo    = lipgloss.Color("12") // Bright blue
	ColorSuccess = lipgloss.Color("10") // Bright green
	ColorFailure = lipgloss.Color("9")  // Bright red
)

// Styles groups the status line styles bound to one renderer.
type Styles struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles creates styles for r. A nil renderer uses the lipgloss default.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Info:    r.NewStyle().Foreground(ColorInfo),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Failure: r.NewStyle().Foreground(ColorFailure),
	}
}
