package runner

import (
	"context"

	"github.com/Cyclone1070/rustlint/internal/tool/service/executor"
)

// commandExecutor runs a child process to completion.
type commandExecutor interface {
	Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error)
}

// manifestChecker reports whether a directory is a project root.
type manifestChecker interface {
	HasManifest(dir string) bool
	Marker() string
}

// skipReporter is told about directories that were not run.
type skipReporter interface {
	Skip(dir, marker string)
}
