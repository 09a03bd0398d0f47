package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teehex/teehex/internal/template"
	"github.com/teehex/teehex/pkg/models"
	"github.com/teehex/teehex/pkg/version"
)

// Flag names.
const (
	flagFrontend  = "frontend"
	flagOverlay   = "overlay"
	flagBackend   = "backend"
	flagDB        = "db"
	flagWorkers   = "workers"
	flagGit       = "git"
	flagDir       = "dir"
	flagTemplates = "templates"
	flagYes       = "yes"
	flagVerbose   = "verbose"
)

// NewRootCommand builds the teehex command.
func NewRootCommand(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teehex [project-name]",
		Short: "Generate a hexagonal Todo app",
		Long: `teehex generates a deployable Todo application with a hexagonal core,
a Vite frontend, serverless API functions and a pluggable persistence adapter.

Options not given as flags are asked interactively unless --yes is set.
Defaults come from ~/.config/teehex/config.yaml and TEEHEX_* variables.

Examples:
  teehex my-app
  teehex my-app --frontend vue --overlay tailwind --db sqlite --yes
  teehex shop --db neon --workers --git=false`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, deps)
		},
	}

	cmd.SetIn(deps.In)
	cmd.SetOut(deps.Out)
	cmd.SetErr(deps.Err)
	cmd.SetVersionTemplate(fmt.Sprintf("teehex %s\n", version.GetFullVersion()))

	f := cmd.Flags()
	f.String(flagFrontend, "", "Frontend framework ("+enumHelp(models.AllFrontends())+")")
	f.String(flagOverlay, "", "Styling overlay ("+enumHelp(models.AllOverlays())+")")
	f.String(flagBackend, "", "Backend target ("+enumHelp(models.AllBackends())+")")
	f.String(flagDB, "", "Persistence provider ("+enumHelp(models.AllDBs())+")")
	f.Bool(flagWorkers, false, "Include the worker-thread demo endpoint")
	f.Bool(flagGit, false, "Initialize a git repository with an initial commit")
	f.String(flagDir, "", "Target directory (default: ./<project-name>)")
	f.String(flagTemplates, "", "Template library directory (default: embedded library)")
	f.BoolP(flagYes, "y", false, "Do not prompt; use flags, config and defaults")
	f.BoolP(flagVerbose, "v", false, "Log debug output to stderr")

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		printTemplates(c)
	})

	return cmd
}

func enumHelp[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, "|")
}

// printTemplates appends the template ids of the selected library to help.
func printTemplates(cmd *cobra.Command) {
	dir, _ := cmd.Flags().GetString(flagTemplates)
	lib, err := loadLibrary(dir)
	if err != nil {
		lib = template.Embedded()
	}
	infos, err := lib.Templates()
	if err != nil {
		return
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "\nAvailable templates (%s):\n", lib.Origin())
	width := 0
	for _, info := range infos {
		width = max(width, len(info.ID))
	}
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "  %-*s  %s\n", width, info.ID, info.Description)
	}
}

// Execute runs the CLI with the process environment and returns the exit
// code: 0 on success, 1 on any error.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deps := DefaultDependencies()
	return run(ctx, NewRootCommand(deps), deps.Err, os.Args[1:])
}

func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", oneLine(err.Error()))
		return 1
	}
	return 0
}

// oneLine collapses a multi-line message onto a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
