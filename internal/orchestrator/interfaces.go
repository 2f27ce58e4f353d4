package orchestrator

import (
	"context"

	"github.com/Cyclone1070/rustlint/internal/changeset"
	"github.com/Cyclone1070/rustlint/internal/tool"
)

// toolRunner runs one definition in one directory.
type toolRunner interface {
	Run(ctx context.Context, def tool.Definition, dir string) (tool.Result, error)
}

// changeResolver derives target directories from version control.
type changeResolver interface {
	Resolve(ctx context.Context) (changeset.Outcome, error)
}

// reporter prints run progress for the user.
type reporter interface {
	Banner(icon, noun, command string)
	Pass(name, dir string)
	Fail(name, dir, stdout, stderr string)
	FailureSummary(failed []string)
	Success(action string)
	Info(msg string)
}
