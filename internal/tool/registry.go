package tool

import (
	"slices"

	"github.com/Cyclone1070/rustlint/internal/config"
)

// Registry is an ordered set of definitions for one mode. Names are unique.
type Registry []Definition

// Names lists definition names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, d := range r {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the definition with the given name.
func (r Registry) Lookup(name string) (Definition, bool) {
	for _, d := range r {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Select returns the definitions whose names appear in filter, in registry
// order. Names missing from the registry are ignored. An empty filter
// returns a copy of the whole registry.
func (r Registry) Select(filter []string) Registry {
	if len(filter) == 0 {
		return slices.Clone(r)
	}
	selected := make(Registry, 0, len(filter))
	for _, d := range r {
		if slices.Contains(filter, d.Name) {
			selected = append(selected, d)
		}
	}
	return selected
}

// Set holds the registry for every mode.
type Set struct {
	Linters      Registry
	Formatters   Registry
	Fixers       Registry
	UnsafeFixers Registry
}

// NewSet builds all registries from configuration.
func NewSet(cfg *config.Config) *Set {
	return &Set{
		Linters:      FromSpecs(cfg.Tools.Linters),
		Formatters:   FromSpecs(cfg.Tools.Formatters),
		Fixers:       FromSpecs(cfg.Tools.Fixers),
		UnsafeFixers: FromSpecs(cfg.Tools.UnsafeFixers),
	}
}

// ForMode returns the registry consulted in mode.
func (s *Set) ForMode(mode Mode) Registry {
	switch mode {
	case ModeFormat:
		return s.Formatters
	case ModeFix:
		return s.Fixers
	case ModeUnsafeFix:
		return s.UnsafeFixers
	default:
		return s.Linters
	}
}
