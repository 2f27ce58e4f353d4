package executor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/Cyclone1070/rustlint/internal/config"
	"github.com/rs/zerolog"
)

// Result is what a finished command left behind.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Truncated is set when either stream exceeded tools.max_command_output_size.
	Truncated bool
}

// OSCommandExecutor runs external commands as child processes.
type OSCommandExecutor struct {
	maxOutput int64
	log       zerolog.Logger
}

// NewOSCommandExecutor creates an executor bounded by cfg's output limit.
func NewOSCommandExecutor(cfg *config.Config, log zerolog.Logger) *OSCommandExecutor {
	if cfg == nil {
		panic("cfg is required")
	}
	return &OSCommandExecutor{maxOutput: cfg.Tools.MaxCommandOutputSize, log: log}
}

// Run executes command in dir and blocks until it exits. A nil env
// inherits the current process environment. Stdin is not connected.
//
// A non-zero exit returns the populated Result together with the
// *exec.ExitError from Wait; see IsExitError. Failure to start returns a
// *CommandError and no Result.
func (e *OSCommandExecutor) Run(ctx context.Context, command []string, dir string, env []string) (*Result, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	stdout := newLimitedBuffer(e.maxOutput)
	stderr := newLimitedBuffer(e.maxOutput)

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.log.Debug().Str("dir", dir).Str("command", strings.Join(command, " ")).Msg("exec")

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	err := cmd.Wait()
	res := &Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  cmd.ProcessState.ExitCode(),
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}
	if err != nil && !IsExitError(err) {
		err = &CommandError{Cmd: command[0], Cause: err, Stage: "wait"}
	}

	e.log.Debug().Str("command", command[0]).Int("exit_code", res.ExitCode).Bool("truncated", res.Truncated).Msg("exit")
	return res, err
}
