// Package ui writes user-facing status lines to the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/Cyclone1070/rustlint/internal/ui/views"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console prints styled status lines to a writer. Color is detected from
// the writer unless disabled.
type Console struct {
	out    io.Writer
	styles views.Styles
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer, noColor bool) *Console {
	if out == nil {
		panic("out is required")
	}
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Console{out: out, styles: views.NewStyles(renderer)}
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// Banner announces the run, e.g. "🔎 Running linter (cargo clippy)...".
func (c *Console) Banner(icon, noun, command string) {
	c.println(views.RenderBanner(c.styles, icon, noun, command))
}

// Skip reports a directory without a manifest.
func (c *Console) Skip(dir, marker string) {
	c.println(views.RenderSkip(c.styles, dir, marker))
}

// Pass reports a tool that succeeded in dir.
func (c *Console) Pass(name, dir string) {
	c.println(views.RenderPass(c.styles, name, dir))
}

// Fail reports a tool that failed in dir with its captured output.
func (c *Console) Fail(name, dir, stdout, stderr string) {
	c.println(views.RenderFail(c.styles, name, dir, stdout, stderr))
}

// FailureSummary lists every tool that failed somewhere.
func (c *Console) FailureSummary(failed []string) {
	c.println(views.RenderFailureSummary(c.styles, failed))
}

// Success prints the final banner naming the completed action.
func (c *Console) Success(action string) {
	c.println(views.RenderSuccess(c.styles, action))
}

// Info prints a neutral message.
func (c *Console) Info(msg string) {
	c.println(views.RenderInfo(c.styles, msg))
}
