package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "rustlint"
)

// ConfigFiles are the file names searched in ConfigDir, in order.
var ConfigFiles = []string{"config.toml", "config.yaml", "config.yml", "config.json"}

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// UnsupportedFormatError is returned for config files with an unknown extension.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config format: %s (want .toml, .yaml, .yml or .json)", e.Path)
}

// ParseError is returned when a config file cannot be decoded.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Cause)
}
func (e *ParseError) Unwrap() error { return e.Cause }

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads configuration and merges it over defaults.
//
// With an explicit path, that file must exist. Otherwise the first of
// ConfigFiles found under ~/.config/rustlint/ is used, and defaults are
// returned when none exists. The second return value is the path that was
// loaded, or "" when running on defaults.
func (l *Loader) Load(path string) (*Config, string, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := l.fs.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		if err := merge(cfg, path, data); err != nil {
			return nil, "", err
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return cfg, "", nil // Use defaults if can't get home dir
	}

	for _, name := range ConfigFiles {
		candidate := filepath.Join(homeDir, ".config", ConfigDir, name)
		data, err := l.fs.ReadFile(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", err // Return error for permission issues
		}
		if err := merge(cfg, candidate, data); err != nil {
			return nil, "", err
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		return cfg, candidate, nil
	}

	return cfg, "", nil
}

// merge decodes data into a generic map and layers it over cfg.
// Keys present in the file overwrite defaults (even if zero); lists are
// replaced, not merged.
func merge(cfg *Config, path string, data []byte) error {
	raw := map[string]any{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return &ParseError{Path: path, Cause: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return &ParseError{Path: path, Cause: err}
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return &ParseError{Path: path, Cause: err}
		}
	default:
		return &UnsupportedFormatError{Path: path}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ZeroFields:  true,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return &ParseError{Path: path, Cause: err}
	}
	return nil
}

// Load is a convenience function using the default loader
func Load(path string) (*Config, string, error) {
	return NewLoader().Load(path)
}
