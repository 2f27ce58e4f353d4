package runner

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/Cyclone1070/rustlint/internal/config"
	"github.com/Cyclone1070/rustlint/internal/testing/mocks"
	"github.com/Cyclone1070/rustlint/internal/tool"
	"github.com/Cyclone1070/rustlint/internal/tool/service/executor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockManifest struct {
	roots map[string]bool
}

func (m *mockManifest) HasManifest(dir string) bool { return m.roots[dir] }
func (m *mockManifest) Marker() string              { return "Cargo.toml" }

type mockReporter struct {
	skipped []string
}

func (m *mockReporter) Skip(dir, marker string) {
	m.skipped = append(m.skipped, dir+":"+marker)
}

func clippy() tool.Definition {
	return tool.NewDefinition("clippy", []string{"cargo", "clippy", "--", "-D", "warnings"})
}

func TestRun_NoManifest_SkipsWithoutExecuting(t *testing.T) {
	mock := mocks.NewMockCommandExecutor()
	reporter := &mockReporter{}
	r := New(mock, &mockManifest{}, reporter)

	res, err := r.Run(context.Background(), clippy(), "docs")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.Skipped)
	assert.Equal(t, "Skipped docs", res.Stdout)
	assert.Equal(t, "clippy", res.Name)
	assert.Empty(t, mock.Calls)
	assert.Equal(t, []string{"docs:Cargo.toml"}, reporter.skipped)
}

func TestRun_SuccessFollowsExitCode(t *testing.T) {
	tests := []struct {
		name     string
		result   *executor.Result
		err      error
		wantPass bool
	}{
		{
			name:     "exit zero with empty output",
			result:   &executor.Result{ExitCode: 0},
			wantPass: true,
		},
		{
			name:     "exit zero with noisy stderr",
			result:   &executor.Result{ExitCode: 0, Stderr: "error: looks bad"},
			wantPass: true,
		},
		{
			name:     "exit one with empty output",
			result:   &executor.Result{ExitCode: 1},
			err:      &exec.ExitError{},
			wantPass: false,
		},
		{
			name:     "exit 101",
			result:   &executor.Result{ExitCode: 101, Stdout: "ok"},
			err:      &exec.ExitError{},
			wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mocks.NewMockCommandExecutor().On("cargo clippy -- -D warnings", tt.result, tt.err)
			r := New(mock, &mockManifest{roots: map[string]bool{"crate": true}}, &mockReporter{})

			res, err := r.Run(context.Background(), clippy(), "crate")

			require.NoError(t, err)
			assert.Equal(t, tt.wantPass, res.Success)
			assert.False(t, res.Skipped)
			assert.Equal(t, tt.result.Stdout, res.Stdout)
			assert.Equal(t, tt.result.Stderr, res.Stderr)
			assert.Equal(t, tt.result.ExitCode, res.ExitCode)
			require.Len(t, mock.Calls, 1)
			assert.Equal(t, []string{"cargo", "clippy", "--", "-D", "warnings"}, mock.Calls[0])
			assert.Equal(t, []string{"crate"}, mock.Dirs)
		})
	}
}

func TestRun_StartFailure_ReturnsError(t *testing.T) {
	startErr := &executor.CommandError{Cmd: "cargo", Stage: "start", Cause: errors.New("not found")}
	mock := mocks.NewMockCommandExecutor().On("cargo clippy -- -D warnings", nil, startErr)
	r := New(mock, &mockManifest{roots: map[string]bool{"crate": true}}, &mockReporter{})

	_, err := r.Run(context.Background(), clippy(), "crate")

	var cmdErr *executor.CommandError
	assert.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "clippy")
}

func TestRun_RealProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping POSIX shell tests on Windows")
	}
	osExec := executor.NewOSCommandExecutor(config.DefaultConfig(), zerolog.Nop())
	dir := t.TempDir()
	manifest := &mockManifest{roots: map[string]bool{dir: true}}
	r := New(osExec, manifest, &mockReporter{})

	failing := tool.NewDefinition("clippy", []string{"sh", "-c", "echo 'error: foo' >&2; exit 1"})
	res, err := r.Run(context.Background(), failing, dir)

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "error: foo\n", res.Stderr)

	passing := tool.NewDefinition("fmt", []string{"true"})
	res, err = r.Run(context.Background(), passing, dir)

	require.NoError(t, err)
	assert.True(t, res.Success)
}
