package git

import (
	"context"
	"strings"

	"github.com/Cyclone1070/rustlint/internal/tool/service/executor"
)

// commandExecutor defines the interface for executing git commands.
type commandExecutor interface {
	Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error)
}

// CLIDiffer lists changed files by shelling out to the git executable.
// Paths are reported as git prints them (relative to the repository top level).
type CLIDiffer struct {
	executor commandExecutor
	dir      string
}

// NewCLIDiffer creates a CLIDiffer that runs git in dir ("" for the current directory).
func NewCLIDiffer(exec commandExecutor, dir string) *CLIDiffer {
	if exec == nil {
		panic("exec is required")
	}
	return &CLIDiffer{executor: exec, dir: dir}
}

// Staged runs `git diff --cached --name-only`.
func (d *CLIDiffer) Staged(ctx context.Context) ([]string, error) {
	return d.names(ctx, "diff --cached --name-only", []string{"git", "diff", "--cached", "--name-only"})
}

// Unstaged runs `git diff --name-only`.
func (d *CLIDiffer) Unstaged(ctx context.Context) ([]string, error) {
	return d.names(ctx, "diff --name-only", []string{"git", "diff", "--name-only"})
}

func (d *CLIDiffer) names(ctx context.Context, query string, cmd []string) ([]string, error) {
	res, err := d.executor.Run(ctx, cmd, d.dir, nil)
	if err != nil {
		if res != nil && res.Stderr != "" {
			return nil, &DiffError{Query: query, Cause: &stderrError{err: err, stderr: strings.TrimSpace(res.Stderr)}}
		}
		return nil, &DiffError{Query: query, Cause: err}
	}
	return splitLines(res.Stdout), nil
}

// stderrError attaches git's own message to an exit error.
type stderrError struct {
	err    error
	stderr string
}

func (e *stderrError) Error() string { return e.stderr }
func (e *stderrError) Unwrap() error { return e.err }

// splitLines splits output into non-empty lines, handling both \n and \r\n.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
