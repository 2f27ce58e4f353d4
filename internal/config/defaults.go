package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Lists present in a config file replace the default list entirely.
// Missing keys are left at their default values.
type Config struct {
	// Manifest is the marker file that identifies a project root.
	Manifest string `mapstructure:"manifest"` // Default: "Cargo.toml"
	// DefaultDir is the target directory when no paths are given.
	DefaultDir string `mapstructure:"default_dir"` // Default: "."

	Git    GitConfig    `mapstructure:"git"`
	Output OutputConfig `mapstructure:"output"`
	Tools  ToolsConfig  `mapstructure:"tools"`
}

type GitConfig struct {
	// Backend selects how changed files are discovered: "cli" or "go-git".
	Backend string `mapstructure:"backend"` // Default: "cli"
}

type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"` // Default: false
}

type ToolsConfig struct {
	// MaxCommandOutputSize bounds captured stdout and stderr, per stream.
	MaxCommandOutputSize int64 `mapstructure:"max_command_output_size"` // Default: 10 * 1024 * 1024 (10MB)

	Linters      []ToolSpec `mapstructure:"linters"`
	Formatters   []ToolSpec `mapstructure:"formatters"`
	Fixers       []ToolSpec `mapstructure:"fixers"`
	UnsafeFixers []ToolSpec `mapstructure:"unsafe_fixers"`
}

// ToolSpec names an external command. Arguments equal to or containing
// "{dir}" are expanded to the target directory at run time.
type ToolSpec struct {
	Name    string   `mapstructure:"name"`
	Command []string `mapstructure:"command"`
}

// Git backends.
const (
	GitBackendCLI   = "cli"
	GitBackendGoGit = "go-git"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Manifest:   "Cargo.toml",
		DefaultDir: ".",
		Git: GitConfig{
			Backend: GitBackendCLI,
		},
		Tools: ToolsConfig{
			MaxCommandOutputSize: 10 * 1024 * 1024,
			Linters: []ToolSpec{
				{Name: "clippy", Command: []string{"cargo", "clippy", "--", "-D", "warnings"}},
			},
			Formatters: []ToolSpec{
				{Name: "fmt", Command: []string{"cargo", "fmt"}},
			},
			Fixers: []ToolSpec{
				{Name: "fix", Command: []string{"cargo", "fix"}},
			},
			UnsafeFixers: []ToolSpec{
				{Name: "fix", Command: []string{"cargo", "fix", "--allow-dirty", "--allow-staged"}},
			},
		},
	}
}
