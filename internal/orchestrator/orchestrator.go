// Package orchestrator selects tools and target directories for a run,
// executes every pairing and aggregates the outcome.
package orchestrator

import (
	"context"
	"strings"

	"github.com/Cyclone1070/rustlint/internal/changeset"
	"github.com/Cyclone1070/rustlint/internal/tool"
	"github.com/rs/zerolog"
)

// Options describes one run.
type Options struct {
	// Dirs are explicit target directories, used verbatim.
	Dirs []string
	// Tools restricts which registry entries run. Empty means all.
	Tools []string
	Mode  tool.Mode
	// GitModified derives Dirs from the working copy's changed files.
	GitModified bool
}

// Report summarizes a run.
type Report struct {
	Mode tool.Mode
	// Status is not changeset.Proceed when the change set left nothing to do.
	Status  changeset.Status
	Dirs    []string
	Results []tool.Result
	// Failed lists each tool that failed in at least one directory, once.
	Failed []string
}

// ExitCode is 1 when any tool failed and 0 otherwise, including runs
// that had nothing to do.
func (r *Report) ExitCode() int {
	if len(r.Failed) > 0 {
		return 1
	}
	return 0
}

// Skipped counts results for directories without a manifest.
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}
	return n
}

// Orchestrator drives a run across tools and directories.
type Orchestrator struct {
	tools      *tool.Set
	runner     toolRunner
	resolver   changeResolver
	reporter   reporter
	defaultDir string
	log        zerolog.Logger
}

// New creates an Orchestrator. defaultDir is the target when neither
// explicit directories nor git-modified mode are requested.
func New(tools *tool.Set, runner toolRunner, resolver changeResolver, reporter reporter, defaultDir string, log zerolog.Logger) *Orchestrator {
	if tools == nil {
		panic("tools is required")
	}
	if runner == nil {
		panic("runner is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	if reporter == nil {
		panic("reporter is required")
	}
	if defaultDir == "" {
		panic("defaultDir is required")
	}
	return &Orchestrator{
		tools:      tools,
		runner:     runner,
		resolver:   resolver,
		reporter:   reporter,
		defaultDir: defaultDir,
		log:        log,
	}
}

// Run resolves targets, runs every selected tool against every directory
// and prints the outcome. Tool failures are collected in the report; the
// returned error is reserved for problems that stop the run, such as a
// missing tool binary or an unreadable repository.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{Mode: opts.Mode, Status: changeset.Proceed}

	dirs, status, err := o.targets(ctx, opts)
	if err != nil {
		return report, err
	}
	if status != changeset.Proceed {
		report.Status = status
		o.reporter.Info(status.Message())
		return report, nil
	}
	report.Dirs = dirs

	selected := o.tools.ForMode(opts.Mode).Select(opts.Tools)
	o.reporter.Banner(bannerIcon(opts.Mode), opts.Mode.Noun(), describe(selected, o.defaultDir))
	o.log.Debug().Str("mode", string(opts.Mode)).Strs("tools", selected.Names()).Strs("dirs", dirs).Msg("run")

	for _, def := range selected {
		toolFailed := false
		for _, dir := range dirs {
			res, err := o.runner.Run(ctx, def, dir)
			if err != nil {
				return report, err
			}
			report.Results = append(report.Results, res)
			if !res.Success {
				o.reporter.Fail(res.Name, dir, res.Stdout, res.Stderr)
				toolFailed = true
				continue
			}
			o.reporter.Pass(res.Name, dir)
		}
		if toolFailed {
			report.Failed = append(report.Failed, def.Name)
		}
	}

	o.log.Debug().Int("results", len(report.Results)).Int("skipped", report.Skipped()).Strs("failed", report.Failed).Msg("done")

	if len(report.Failed) > 0 {
		o.reporter.FailureSummary(report.Failed)
		return report, nil
	}
	o.reporter.Success(opts.Mode.Action())
	return report, nil
}

// targets picks the directories for a run: the change set in git-modified
// mode, else explicit directories, else the default directory.
func (o *Orchestrator) targets(ctx context.Context, opts Options) ([]string, changeset.Status, error) {
	if opts.GitModified {
		outcome, err := o.resolver.Resolve(ctx)
		if err != nil {
			return nil, changeset.Proceed, err
		}
		return outcome.Dirs, outcome.Status, nil
	}
	if len(opts.Dirs) > 0 {
		return opts.Dirs, changeset.Proceed, nil
	}
	return []string{o.defaultDir}, changeset.Proceed, nil
}

func bannerIcon(mode tool.Mode) string {
	switch mode {
	case tool.ModeFormat:
		return "🎨"
	case tool.ModeFix, tool.ModeUnsafeFix:
		return "🔧"
	default:
		return "🔎"
	}
}

// describe shortens each command to its leading words before the first
// flag, e.g. "cargo clippy -- -D warnings" becomes "cargo clippy".
func describe(reg tool.Registry, dir string) string {
	var parts []string
	for _, def := range reg {
		var words []string
		for _, arg := range def.Command(dir) {
			if strings.HasPrefix(arg, "-") {
				break
			}
			words = append(words, arg)
		}
		if len(words) > 0 {
			parts = append(parts, strings.Join(words, " "))
		}
	}
	return strings.Join(parts, ", ")
}
