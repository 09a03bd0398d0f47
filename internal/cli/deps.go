// Package cli provides the cobra command and dependency wiring for the
// teehex CLI.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/teehex/teehex/internal/core/project"
	"github.com/teehex/teehex/internal/template"
)

// Dependencies holds the process resources and factories the command
// uses. Tests replace them to run without a terminal, environment or git.
type Dependencies struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Getenv func(string) string

	// VCS overrides the git bootstrapper when set.
	VCS project.VCS
	// ForceHeadless, when set, overrides terminal detection.
	ForceHeadless *bool
}

// DefaultDependencies wires the real process streams and environment.
func DefaultDependencies() *Dependencies {
	return &Dependencies{
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Getenv: os.Getenv,
	}
}

// newLogger returns a text logger on w at the given level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLevel maps a config log level onto slog. Unknown values mean warn.
func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// loadLibrary opens the template library at dir, or the embedded one.
func loadLibrary(dir string) (*template.Library, error) {
	if dir == "" {
		return template.Embedded(), nil
	}
	return template.FromDir(dir)
}
