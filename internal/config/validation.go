package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if c.Manifest == "" {
		errs = append(errs, "manifest must not be empty")
	} else if strings.ContainsAny(c.Manifest, `/\`) {
		errs = append(errs, "manifest must be a file name, not a path")
	}
	if c.DefaultDir == "" {
		errs = append(errs, "default_dir must not be empty")
	}

	switch c.Git.Backend {
	case GitBackendCLI, GitBackendGoGit:
	default:
		errs = append(errs, fmt.Sprintf("git.backend must be %q or %q, got %q", GitBackendCLI, GitBackendGoGit, c.Git.Backend))
	}

	if c.Tools.MaxCommandOutputSize < 1 {
		errs = append(errs, "tools.max_command_output_size must be >= 1")
	}

	errs = append(errs, validateSpecs("tools.linters", c.Tools.Linters)...)
	errs = append(errs, validateSpecs("tools.formatters", c.Tools.Formatters)...)
	errs = append(errs, validateSpecs("tools.fixers", c.Tools.Fixers)...)
	errs = append(errs, validateSpecs("tools.unsafe_fixers", c.Tools.UnsafeFixers)...)

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

func validateSpecs(key string, specs []ToolSpec) []string {
	var errs []string
	if len(specs) == 0 {
		return []string{key + " must list at least one tool"}
	}
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			errs = append(errs, fmt.Sprintf("%s[%d].name must not be empty", key, i))
		} else if seen[spec.Name] {
			errs = append(errs, fmt.Sprintf("%s[%d].name %q is duplicated", key, i, spec.Name))
		}
		seen[spec.Name] = true
		if len(spec.Command) == 0 || spec.Command[0] == "" {
			errs = append(errs, fmt.Sprintf("%s[%d].command must not be empty", key, i))
		}
	}
	return errs
}
