// Package tool defines external tool definitions and the per-mode registries
// that hold them.
package tool

import (
	"strings"

	"github.com/Cyclone1070/rustlint/internal/config"
)

// Mode selects which registry a run consults.
type Mode string

const (
	ModeLint      Mode = "lint"
	ModeFormat    Mode = "format"
	ModeFix       Mode = "fix"
	ModeUnsafeFix Mode = "unsafe-fix"
)

// ResolveMode applies the fixed priority: format, then fix (unsafe when
// requested), then lint.
func ResolveMode(format, fix, unsafeFixes bool) Mode {
	switch {
	case format:
		return ModeFormat
	case fix && unsafeFixes:
		return ModeUnsafeFix
	case fix:
		return ModeFix
	default:
		return ModeLint
	}
}

// Action names what a successful run in this mode accomplished.
func (m Mode) Action() string {
	switch m {
	case ModeFormat:
		return "formatting"
	case ModeFix, ModeUnsafeFix:
		return "fixes"
	default:
		return "linting checks"
	}
}

// Noun names the kind of tool a mode runs, for banners.
func (m Mode) Noun() string {
	switch m {
	case ModeFormat:
		return "formatter"
	case ModeFix, ModeUnsafeFix:
		return "fixer"
	default:
		return "linter"
	}
}

// DirPlaceholder in a command argument is replaced with the target directory.
const DirPlaceholder = "{dir}"

// Definition is a named external command.
type Definition struct {
	Name    string
	Command func(dir string) []string
}

// NewDefinition builds a Definition from a static argument template.
func NewDefinition(name string, args []string) Definition {
	template := append([]string(nil), args...)
	return Definition{
		Name: name,
		Command: func(dir string) []string {
			out := make([]string, len(template))
			for i, arg := range template {
				out[i] = strings.ReplaceAll(arg, DirPlaceholder, dir)
			}
			return out
		},
	}
}

// Result is the outcome of running one Definition in one directory.
// Success is true for a zero exit and for a skipped directory; Skipped
// tells the two apart.
type Result struct {
	Name     string
	Dir      string
	Success  bool
	Skipped  bool
	Stdout   string
	Stderr   string
	ExitCode int
}

// FromSpecs converts configured tool specs into definitions, keeping order.
func FromSpecs(specs []config.ToolSpec) Registry {
	reg := make(Registry, 0, len(specs))
	for _, s := range specs {
		reg = append(reg, NewDefinition(s.Name, s.Command))
	}
	return reg
}
