package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, path, err := loader.Load("")

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "Cargo.toml", cfg.Manifest)
	assert.Equal(t, ".", cfg.DefaultDir)
	assert.Equal(t, GitBackendCLI, cfg.Git.Backend)
	require.Len(t, cfg.Tools.Linters, 1)
	assert.Equal(t, []string{"cargo", "clippy", "--", "-D", "warnings"}, cfg.Tools.Linters[0].Command)
}

func TestLoad_TOML_OverridesAndReplacesLists(t *testing.T) {
	configTOML := `
manifest = "Project.toml"

[git]
backend = "go-git"

[[tools.linters]]
name = "clippy"
command = ["cargo", "clippy"]

[[tools.linters]]
name = "audit"
command = ["cargo", "audit"]
`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.toml": []byte(configTOML),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, path, err := loader.Load("")

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.config/rustlint/config.toml", path)
	assert.Equal(t, "Project.toml", cfg.Manifest)
	assert.Equal(t, GitBackendGoGit, cfg.Git.Backend)
	require.Len(t, cfg.Tools.Linters, 2)
	assert.Equal(t, "audit", cfg.Tools.Linters[1].Name)
	assert.Equal(t, []string{"cargo", "audit"}, cfg.Tools.Linters[1].Command)
	// Untouched lists keep their defaults
	assert.Equal(t, "fmt", cfg.Tools.Formatters[0].Name)
}

func TestLoad_ShorterListReplacesDefault(t *testing.T) {
	// Default unsafe fixer has four args; the override has two and must not
	// inherit the trailing default args.
	configJSON := `{"tools": {"unsafe_fixers": [{"name": "fix", "command": ["cargo", "fix"]}]}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.json": []byte(configJSON),
		},
	}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	require.NoError(t, err)
	require.Len(t, cfg.Tools.UnsafeFixers, 1)
	assert.Equal(t, []string{"cargo", "fix"}, cfg.Tools.UnsafeFixers[0].Command)
}

func TestLoad_YAML_PartialOverride_MergesWithDefaults(t *testing.T) {
	configYAML := "output:\n  no_color: true\ntools:\n  max_command_output_size: 2048\n"
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.yaml": []byte(configYAML),
		},
	}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	require.NoError(t, err)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, int64(2048), cfg.Tools.MaxCommandOutputSize)
	assert.Equal(t, "Cargo.toml", cfg.Manifest) // Default preserved
	assert.Len(t, cfg.Tools.Linters, 1)        // Default preserved
}

func TestLoad_SearchOrder_TOMLWinsOverJSON(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.toml": []byte(`default_dir = "crates"`),
			"/home/user/.config/rustlint/config.json": []byte(`{"default_dir": "other"}`),
		},
	}

	cfg, path, err := NewLoaderWithFS(fs).Load("")

	require.NoError(t, err)
	assert.Equal(t, "crates", cfg.DefaultDir)
	assert.Equal(t, "/home/user/.config/rustlint/config.toml", path)
}

func TestLoad_ExplicitPath(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/work/rustlint.json": []byte(`{"manifest": "Custom.toml"}`),
		},
	}

	cfg, path, err := NewLoaderWithFS(fs).Load("/work/rustlint.json")

	require.NoError(t, err)
	assert.Equal(t, "/work/rustlint.json", path)
	assert.Equal(t, "Custom.toml", cfg.Manifest)
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{HomeDirErr: errors.New("no home")}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_ExplicitPathMissing_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user", Files: map[string][]byte{}}

	cfg, _, err := NewLoaderWithFS(fs).Load("/nope/config.toml")

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.json": []byte(`{invalid json`),
		},
	}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	assert.Nil(t, cfg)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoad_UnknownKey_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.json": []byte(`{"manifset": "Cargo.toml"}`),
		},
	}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifset")
}

func TestLoad_UnsupportedExtension_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{"/work/config.ini": []byte("x=1")},
	}

	_, _, err := NewLoaderWithFS(fs).Load("/work/config.ini")

	var formatErr *UnsupportedFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLoad_InvalidValues_FailValidation(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/rustlint/config.json": []byte(`{"git": {"backend": "svn"}}`),
		},
	}

	cfg, _, err := NewLoaderWithFS(fs).Load("")

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git.backend")
}
