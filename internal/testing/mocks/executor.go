package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/Cyclone1070/rustlint/internal/tool/service/executor"
)

// MockCommandExecutor returns canned results keyed by the space-joined
// command line.
type MockCommandExecutor struct {
	Mu      sync.Mutex
	Results map[string]*executor.Result
	Errors  map[string]error
	Calls   [][]string
	Dirs    []string
	// RunFunc, when set, replaces the canned lookup.
	RunFunc func(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error)
}

// NewMockCommandExecutor creates an executor with no canned results.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Results: make(map[string]*executor.Result),
		Errors:  make(map[string]error),
	}
}

// On registers the result and error returned for cmd.
func (m *MockCommandExecutor) On(cmd string, res *executor.Result, err error) *MockCommandExecutor {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Results[cmd] = res
	if err != nil {
		m.Errors[cmd] = err
	}
	return m
}

// Run implements the commandExecutor interfaces.
func (m *MockCommandExecutor) Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
	m.Mu.Lock()
	m.Calls = append(m.Calls, cmd)
	m.Dirs = append(m.Dirs, dir)
	fn := m.RunFunc
	key := strings.Join(cmd, " ")
	res, err := m.Results[key], m.Errors[key]
	m.Mu.Unlock()

	if fn != nil {
		return fn(ctx, cmd, dir, env)
	}
	return res, err
}
