// Package runner executes a single tool definition against a single directory.
package runner

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/rustlint/internal/tool"
	"github.com/Cyclone1070/rustlint/internal/tool/service/executor"
)

// Runner runs tool definitions in project directories.
type Runner struct {
	executor commandExecutor
	manifest manifestChecker
	reporter skipReporter
}

// New creates a Runner with injected dependencies.
func New(exec commandExecutor, manifest manifestChecker, reporter skipReporter) *Runner {
	if exec == nil {
		panic("exec is required")
	}
	if manifest == nil {
		panic("manifest is required")
	}
	if reporter == nil {
		panic("reporter is required")
	}
	return &Runner{executor: exec, manifest: manifest, reporter: reporter}
}

// Run executes def in dir and reports how it went.
//
// A directory without the manifest is skipped: nothing is executed and the
// result counts as a success. A command that exits non-zero yields an
// unsuccessful result, not an error. The error return is reserved for
// commands that could not be run at all, such as a missing binary.
func (r *Runner) Run(ctx context.Context, def tool.Definition, dir string) (tool.Result, error) {
	if !r.manifest.HasManifest(dir) {
		r.reporter.Skip(dir, r.manifest.Marker())
		return tool.Result{
			Name:    def.Name,
			Dir:     dir,
			Success: true,
			Skipped: true,
			Stdout:  fmt.Sprintf("Skipped %s", dir),
		}, nil
	}

	command := def.Command(dir)
	res, err := r.executor.Run(ctx, command, dir, nil)
	if err != nil && !executor.IsExitError(err) {
		return tool.Result{}, fmt.Errorf("run %s in %s: %w", def.Name, dir, err)
	}
	if res == nil {
		res = &executor.Result{ExitCode: -1}
	}

	return tool.Result{
		Name:     def.Name,
		Dir:      dir,
		Success:  res.ExitCode == 0,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
	}, nil
}
