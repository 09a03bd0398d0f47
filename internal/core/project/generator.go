package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/teehex/teehex/internal/core/git"
	"github.com/teehex/teehex/internal/fsops"
	"github.com/teehex/teehex/internal/template"
	"github.com/teehex/teehex/pkg/models"
)

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	Options       models.OptionSet
	TargetDir     string // Relative paths resolve against the working directory.
	CommitMessage string // Initial commit message; defaults to DefaultCommitMessage.
}

// DefaultCommitMessage is used when GenerateOptions.CommitMessage is empty.
const DefaultCommitMessage = "chore: initial scaffold from teehex"

// GenerateResult summarizes a finished run.
type GenerateResult struct {
	TargetDir string      // Absolute target directory.
	Files     []string    // Files in the generated tree, slash-separated, sorted.
	Steps     []Step      // Steps that completed, in order.
	Warnings  []string    // Non-fatal problems.
	VCS       git.Outcome // Result of repository initialization.
}

// VCS initializes version control in a generated project.
type VCS interface {
	Bootstrap(ctx context.Context, dir, message string) git.Outcome
}

// Generator composes projects from a template library.
type Generator interface {
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// Option configures a Generator.
type Option func(*generator)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(g *generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithVCS replaces the git bootstrapper.
func WithVCS(v VCS) Option {
	return func(g *generator) {
		if v != nil {
			g.vcs = v
		}
	}
}

type generator struct {
	lib      *template.Library
	vcs      VCS
	reporter Reporter
	logger   *slog.Logger
}

// NewGenerator creates a Generator reading fragments from lib. A nil
// logger discards output.
func NewGenerator(lib *template.Library, logger *slog.Logger, opts ...Option) Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &generator{
		lib:      lib,
		reporter: nopReporter{},
		logger:   logger.With("module", "project"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.vcs == nil {
		g.vcs = git.NewBootstrapper(logger)
	}
	return g
}

// run carries the state of one Generate call through the steps.
type run struct {
	lib     *template.Library
	opts    models.OptionSet
	root    string
	message string
	result  *GenerateResult
	logger  *slog.Logger
	vcs     VCS
}

type stepFunc func(ctx context.Context, r *run) error

func (g *generator) stepFuncs() map[Step]stepFunc {
	return map[Step]stepFunc{
		StepPreflight: preflight,
		StepBackend:   copyBackend,
		StepCore:      copyCore,
		StepFrontend:  copyFrontend,
		StepProxy:     patchProxy,
		StepConfig:    writeConfig,
		StepOverlay:   applyOverlay,
		StepDatabase:  installAdapter,
		StepWiring:    writeWiring,
		StepPrune:     prune,
		StepVCS:       initVCS,
	}
}

// Generate runs every step in order. A failing step aborts the run with a
// *StepError; files written by earlier steps stay in place.
func (g *generator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if g.lib == nil {
		return nil, fmt.Errorf("generate: %w", template.ErrLibraryNotFound)
	}

	root, err := filepath.Abs(opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("resolve target %q: %w", opts.TargetDir, err)
	}

	message := opts.CommitMessage
	if message == "" {
		message = DefaultCommitMessage
	}

	r := &run{
		lib:     g.lib,
		opts:    opts.Options,
		root:    root,
		message: message,
		result:  &GenerateResult{TargetDir: root, VCS: git.Skipped()},
		logger:  g.logger,
		vcs:     g.vcs,
	}

	g.logger.Info("generating project", "target", root, "options", opts.Options.String())

	funcs := g.stepFuncs()
	steps := Steps()
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return r.result, &StepError{Step: step, Err: err}
		}

		g.reporter.StepStarted(step, i, len(steps))
		err := funcs[step](ctx, r)
		g.reporter.StepFinished(step, i, len(steps), err)
		if err != nil {
			g.logger.Debug("generation step failed", "step", step, "error", err)
			return r.result, &StepError{Step: step, Err: err}
		}

		r.result.Steps = append(r.result.Steps, step)
		g.logger.Debug("generation step done", "step", step)

		if step == StepPrune {
			files, err := listFiles(root)
			if err != nil {
				return r.result, &StepError{Step: step, Err: err}
			}
			r.result.Files = files
		}
	}

	g.logger.Info("project generated", "target", root, "files", len(r.result.Files), "warnings", len(r.result.Warnings))
	return r.result, nil
}

// path maps a slash-separated project path to an OS path under the root.
func (r *run) path(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

func (r *run) warn(msg string) {
	r.result.Warnings = append(r.result.Warnings, msg)
	r.logger.Info("generation warning", "warning", msg)
}

// listFiles returns every regular file below root, excluding .git.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list generated files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func preflight(_ context.Context, r *run) error {
	empty, err := fsops.IsDirEmptyOrMissing(r.root)
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("%w: %s", ErrTargetNotEmpty, r.root)
	}
	return nil
}

func initVCS(ctx context.Context, r *run) error {
	if !r.opts.GitEnabled {
		r.result.VCS = git.Skipped()
		return nil
	}

	r.result.VCS = r.vcs.Bootstrap(ctx, r.root, r.message)
	if r.result.VCS.IsWarning() {
		r.warn(r.result.VCS.Warning())
	}
	return nil
}
