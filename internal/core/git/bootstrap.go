package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// OutcomeKind classifies the result of Bootstrap.
type OutcomeKind int

const (
	// OutcomeSkipped means git initialization was not requested.
	OutcomeSkipped OutcomeKind = iota
	// OutcomeCommitted means the repository was created with an initial commit.
	OutcomeCommitted
	// OutcomeWarning means a git step failed; the generated project is still usable.
	OutcomeWarning
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCommitted:
		return "committed"
	case OutcomeWarning:
		return "warning"
	default:
		return "skipped"
	}
}

// Outcome is the best-effort result of initializing a repository.
type Outcome struct {
	Kind OutcomeKind
	// Step is the git subcommand that failed, set for OutcomeWarning.
	Step string
	// Err is the underlying failure, set for OutcomeWarning.
	Err error
}

// Skipped returns the outcome for a run without git initialization.
func Skipped() Outcome { return Outcome{Kind: OutcomeSkipped} }

// IsWarning reports whether o carries a failure that the caller should show.
func (o Outcome) IsWarning() bool { return o.Kind == OutcomeWarning }

// Warning returns a one-line description of the failure, or "".
func (o Outcome) Warning() string {
	if o.Kind != OutcomeWarning {
		return ""
	}
	if errors.Is(o.Err, ErrSystemGitNotFound) {
		return "git is not installed; skipped repository initialization"
	}
	return fmt.Sprintf("git %s failed: %v", o.Step, o.Err)
}

// Bootstrapper runs git init, add and commit in a project directory.
type Bootstrapper struct {
	logger *slog.Logger
	run    func(ctx context.Context, dir string, args ...string) (string, error)
}

// NewBootstrapper returns a Bootstrapper that runs the system git binary.
// A nil logger discards output.
func NewBootstrapper(logger *slog.Logger) *Bootstrapper {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Bootstrapper{logger: logger.With("module", "git"), run: execGit}
}

// Bootstrap initializes a repository in dir, stages everything and creates
// one commit with message. It never returns an error: failures become an
// OutcomeWarning naming the failed step.
func (b *Bootstrapper) Bootstrap(ctx context.Context, dir, message string) Outcome {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", message},
	}

	for _, args := range steps {
		if _, err := b.run(ctx, dir, args...); err != nil {
			b.logger.Info("git step failed", "step", args[0], "dir", dir, "error", err)
			return Outcome{Kind: OutcomeWarning, Step: args[0], Err: err}
		}
		b.logger.Debug("git step done", "step", args[0], "dir", dir)
	}

	return Outcome{Kind: OutcomeCommitted}
}
