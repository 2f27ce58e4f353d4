// Package main provides the rustlint command: it runs cargo formatters,
// linters and fixers against project directories and reports the outcome.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/Cyclone1070/rustlint/internal/changeset"
	"github.com/Cyclone1070/rustlint/internal/config"
	"github.com/Cyclone1070/rustlint/internal/logging"
	"github.com/Cyclone1070/rustlint/internal/manifest"
	"github.com/Cyclone1070/rustlint/internal/orchestrator"
	"github.com/Cyclone1070/rustlint/internal/tool"
	"github.com/Cyclone1070/rustlint/internal/tool/runner"
	"github.com/Cyclone1070/rustlint/internal/tool/service/executor"
	"github.com/Cyclone1070/rustlint/internal/tool/service/fs"
	"github.com/Cyclone1070/rustlint/internal/tool/service/git"
	"github.com/Cyclone1070/rustlint/internal/ui"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Stdout     io.Writer
	Stderr     io.Writer
	LoadConfig func(path string) (*config.Config, string, error)
	// NewSource builds the change source for git-modified runs.
	NewSource func(backend string, exec *executor.OSCommandExecutor) changeset.Source
}

func defaultDependencies() Dependencies {
	return Dependencies{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LoadConfig: config.Load,
		NewSource:  newSource,
	}
}

func newSource(backend string, exec *executor.OSCommandExecutor) changeset.Source {
	if backend == config.GitBackendGoGit {
		return git.NewRepoDiffer(".")
	}
	return git.NewCLIDiffer(exec, "")
}

// usageError marks invalid command-line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// flags holds the parsed command line.
type flags struct {
	linters     []string
	formatters  []string
	fixers      []string
	format      bool
	fix         bool
	unsafeFixes bool
	gitModified bool
	configPath  string
	gitBackend  string
	noColor     bool
	listTools   bool
	logLevel    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], defaultDependencies())
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, deps Dependencies) int {
	code := exitOK
	cmd := newRootCommand(deps, &code)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			fmt.Fprintf(deps.Stderr, "Run '%s --help' for usage.\n", cmd.Name())
			return exitUsage
		}
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	return code
}

func newRootCommand(deps Dependencies, code *int) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "rustlint [paths...]",
		Short: "Run cargo formatters, linters and fixers over Rust projects",
		Long: `rustlint runs cargo clippy (default), cargo fmt (--format) or cargo fix (--fix)
in each given directory, in the current directory when none is given, or in every
project that owns a file changed in git (--git-modified).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := execute(cmd.Context(), deps, f, args)
			*code = c
			return err
		},
	}
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.Flags()
	pf.StringSliceVar(&f.linters, "linters", nil, "linters to run (default all)")
	pf.BoolVar(&f.format, "format", false, "run formatters instead of linters")
	pf.StringSliceVar(&f.formatters, "formatters", nil, "formatters to run with --format (default all)")
	pf.BoolVar(&f.fix, "fix", false, "run fixers instead of linters")
	pf.StringSliceVar(&f.fixers, "fixers", nil, "fixers to run with --fix (default all)")
	pf.BoolVar(&f.unsafeFixes, "unsafe-fixes", false, "allow fixers to touch dirty or staged files (with --fix)")
	pf.BoolVarP(&f.gitModified, "git-modified", "g", false, "only run on projects with changed files")
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/rustlint/config.{toml,yaml,yml,json})")
	pf.StringVar(&f.gitBackend, "git-backend", "", "how changed files are found: cli or go-git")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&f.listTools, "list-tools", false, "list configured tools and exit")
	pf.StringVar(&f.logLevel, "log-level", "", "diagnostic log level: trace, debug, info, warn, error, disabled")

	return cmd
}

// execute wires the components for one invocation and runs it.
func execute(ctx context.Context, deps Dependencies, f *flags, args []string) (int, error) {
	if f.logLevel != "" {
		if _, ok := logging.ParseLevel(f.logLevel); !ok {
			return exitUsage, usagef("invalid log level %q", f.logLevel)
		}
	}
	log := logging.Configure(logging.Options{Level: f.logLevel, NoColor: f.noColor, Writer: deps.Stderr})

	cfg, cfgPath, err := deps.LoadConfig(f.configPath)
	if err != nil {
		if f.configPath != "" {
			return exitFailure, fmt.Errorf("failed to load config: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(deps.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}
	log.Debug().Str("path", cfgPath).Msg("config loaded")

	tools := tool.NewSet(cfg)
	if err := validateChoices(tools, f); err != nil {
		return exitUsage, err
	}

	backend := cfg.Git.Backend
	if f.gitBackend != "" {
		backend = f.gitBackend
	}
	if backend != config.GitBackendCLI && backend != config.GitBackendGoGit {
		return exitUsage, usagef("invalid git backend %q (choose from %s, %s)", backend, config.GitBackendCLI, config.GitBackendGoGit)
	}

	console := ui.NewConsole(deps.Stdout, f.noColor || cfg.Output.NoColor)

	if f.listTools {
		listTools(console, tools)
		return exitOK, nil
	}

	osFS := fs.NewOSFileSystem()
	locator := manifest.NewLocator(osFS, cfg.Manifest)
	commandExecutor := executor.NewOSCommandExecutor(cfg, log)
	toolRunner := runner.New(commandExecutor, locator, console)

	log.Debug().Str("backend", backend).Msg("git backend")
	resolver := changeset.NewResolver(deps.NewSource(backend, commandExecutor), osFS, locator, log)

	orch := orchestrator.New(tools, toolRunner, resolver, console, cfg.DefaultDir, log)

	mode := tool.ResolveMode(f.format, f.fix, f.unsafeFixes)
	report, err := orch.Run(ctx, orchestrator.Options{
		Dirs:        args,
		Tools:       filterFor(mode, f),
		Mode:        mode,
		GitModified: f.gitModified,
	})
	if err != nil {
		return exitFailure, err
	}
	return report.ExitCode(), nil
}

// filterFor picks the name filter flag that belongs to mode.
func filterFor(mode tool.Mode, f *flags) []string {
	switch mode {
	case tool.ModeFormat:
		return f.formatters
	case tool.ModeFix, tool.ModeUnsafeFix:
		return f.fixers
	default:
		return f.linters
	}
}

// validateChoices rejects tool names that no registry entry carries.
func validateChoices(tools *tool.Set, f *flags) error {
	checks := []struct {
		flag  string
		names []string
		reg   tool.Registry
	}{
		{"--linters", f.linters, tools.Linters},
		{"--formatters", f.formatters, tools.Formatters},
		{"--fixers", f.fixers, slices.Concat(tools.Fixers, tools.UnsafeFixers)},
	}
	for _, c := range checks {
		known := c.reg.Names()
		for _, name := range c.names {
			if !slices.Contains(known, name) {
				return usagef("invalid choice for %s: %q (choose from %s)", c.flag, name, strings.Join(dedupe(known), ", "))
			}
		}
	}
	return nil
}

func listTools(console *ui.Console, tools *tool.Set) {
	groups := []struct {
		label string
		reg   tool.Registry
	}{
		{"linters", tools.Linters},
		{"formatters", tools.Formatters},
		{"fixers", tools.Fixers},
		{"unsafe fixers", tools.UnsafeFixers},
	}
	for _, g := range groups {
		console.Info(g.label + ":")
		for _, def := range g.reg {
			console.Info(fmt.Sprintf("  %s: %s", def.Name, strings.Join(def.Command(tool.DirPlaceholder), " ")))
		}
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
