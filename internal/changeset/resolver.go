// Package changeset maps the files changed in the working copy to the
// project directories that own them.
package changeset

import (
	"context"
	"errors"

	"github.com/Cyclone1070/rustlint/internal/manifest"
	"github.com/rs/zerolog"
)

// Source lists changed file paths from version control.
type Source interface {
	Staged(ctx context.Context) ([]string, error)
	Unstaged(ctx context.Context) ([]string, error)
}

// FileSystem is the filesystem view the resolver needs.
type FileSystem interface {
	Exists(path string) bool
}

// projectLocator finds the project root owning a file.
type projectLocator interface {
	FindProjectRoot(filePath string) (string, error)
}

// Status tells the caller whether there is anything to run.
type Status int

const (
	// Proceed means Dirs holds at least one project directory.
	Proceed Status = iota
	// NoChangedFiles means no changed file exists on disk.
	NoChangedFiles
	// NoChangedProjects means changed files exist but none belongs to a project.
	NoChangedProjects
)

// Message returns the informational line for a nothing-to-do status.
func (s Status) Message() string {
	switch s {
	case NoChangedFiles:
		return "No modified files found."
	case NoChangedProjects:
		return "No modified projects found."
	default:
		return ""
	}
}

// Outcome is the result of resolving the change set.
type Outcome struct {
	Status Status
	Files  []string
	Dirs   []string
}

// Resolver turns a change Source into project directories.
type Resolver struct {
	source  Source
	fs      FileSystem
	locator projectLocator
	log     zerolog.Logger
}

// NewResolver creates a Resolver with injected dependencies.
func NewResolver(source Source, fs FileSystem, locator projectLocator, log zerolog.Logger) *Resolver {
	if source == nil {
		panic("source is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	if locator == nil {
		panic("locator is required")
	}
	return &Resolver{source: source, fs: fs, locator: locator, log: log}
}

// Resolve collects staged then unstaged files, keeps those that still
// exist, and maps each to its project root. Both lists are deduplicated in
// first-seen order. A failing staged query is an error; a failing unstaged
// query counts as no unstaged changes.
func (r *Resolver) Resolve(ctx context.Context) (Outcome, error) {
	staged, err := r.source.Staged(ctx)
	if err != nil {
		return Outcome{}, err
	}

	unstaged, err := r.source.Unstaged(ctx)
	if err != nil {
		r.log.Debug().Err(err).Msg("unstaged query failed, treating as no unstaged changes")
		unstaged = nil
	}

	changed := make([]string, 0, len(staged)+len(unstaged))
	changed = append(changed, staged...)
	changed = append(changed, unstaged...)

	var files []string
	for _, f := range dedupe(changed) {
		if r.fs.Exists(f) {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return Outcome{Status: NoChangedFiles}, nil
	}

	var roots []string
	for _, f := range files {
		root, err := r.locator.FindProjectRoot(f)
		if err != nil {
			if errors.Is(err, manifest.ErrNotFound) {
				r.log.Debug().Str("file", f).Msg("no owning project")
				continue
			}
			return Outcome{}, err
		}
		roots = append(roots, root)
	}
	dirs := dedupe(roots)
	if len(dirs) == 0 {
		return Outcome{Status: NoChangedProjects, Files: files}, nil
	}

	r.log.Debug().Strs("dirs", dirs).Int("files", len(files)).Msg("resolved change set")
	return Outcome{Status: Proceed, Files: files, Dirs: dirs}, nil
}

// dedupe drops repeated entries, keeping the first occurrence of each.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
