package executor

import (
	"errors"
	"fmt"
	"os/exec"
)

// CommandError represents failures to launch or supervise a command.
// A command that runs and exits non-zero is not a CommandError.
type CommandError struct {
	Cmd   string
	Cause error
	Stage string // "start", "wait"
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed at %s: %v", e.Cmd, e.Stage, e.Cause)
}
func (e *CommandError) Unwrap() error { return e.Cause }

// IsExitError reports whether err only signals a non-zero exit status.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
