package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teehex/teehex/internal/cli/wizard"
	"github.com/teehex/teehex/internal/config"
	"github.com/teehex/teehex/internal/core/project"
	"github.com/teehex/teehex/internal/ui"
	"github.com/teehex/teehex/pkg/models"
)

// choiceFlags maps flags to the wizard questions they answer.
var choiceFlags = map[string]string{
	flagFrontend: wizard.IDFrontend,
	flagOverlay:  wizard.IDOverlay,
	flagBackend:  wizard.IDBackend,
	flagDB:       wizard.IDDB,
	flagWorkers:  wizard.IDWorkers,
	flagGit:      wizard.IDGit,
}

func runGenerate(cmd *cobra.Command, args []string, deps *Dependencies) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	verbose, _ := flags.GetBool(flagVerbose)
	nonInteractive, _ := flags.GetBool(flagYes)

	name := ""
	if len(args) > 0 {
		name = args[0]
		if _, err := models.NormalizeProjectName(name); err != nil {
			return err
		}
	}

	// Config problems are reported before a logger level is known.
	bootLogger := newLogger(deps.Err, slog.LevelWarn)
	if verbose {
		bootLogger = newLogger(deps.Err, slog.LevelDebug)
	}
	loader := config.NewLoader(deps.Getenv, bootLogger)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := parseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(deps.Err, level)
	if src := loader.Source(); src != "" {
		logger.Debug("config file", "path", src)
	}

	choices, skip := resolveChoices(cmd, cfg, name)

	hm := ui.NewHeadlessManager(deps.In)
	if deps.ForceHeadless != nil {
		hm.ForceHeadless(*deps.ForceHeadless)
	}
	theme := ui.NewTheme(hm.IsHeadless() || deps.Getenv("NO_COLOR") != "")

	if !nonInteractive {
		if questions := wizard.Questions(choices, skip); len(questions) > 0 {
			answers, err := wizard.New(deps.In, deps.Out, hm, theme).Run(ctx, questions)
			if err != nil {
				return err
			}
			wizard.Apply(answers, &choices)
		}
	} else if name == "" {
		return fmt.Errorf("%w: a project name argument is required with --yes", models.ErrInvalidProjectName)
	}

	opts, err := models.NewOptionSet(choices)
	if err != nil {
		return err
	}

	templates, _ := flags.GetString(flagTemplates)
	if templates == "" {
		templates = cfg.Templates
	}
	lib, err := loadLibrary(templates)
	if err != nil {
		return err
	}

	target, _ := flags.GetString(flagDir)
	if target == "" {
		target = opts.ProjectName
	}

	reporter := ui.NewStepReporter(theme, hm, deps.Out)
	defer reporter.Close()

	genOpts := []project.Option{project.WithReporter(reporter)}
	if deps.VCS != nil {
		genOpts = append(genOpts, project.WithVCS(deps.VCS))
	}
	logger.Debug("generating", "options", opts.String(), "library", lib.Origin(), "target", target)

	result, err := project.NewGenerator(lib, logger, genOpts...).Generate(ctx, project.GenerateOptions{
		Options:       opts,
		TargetDir:     target,
		CommitMessage: cfg.CommitMessage,
	})
	reporter.Close()
	if err != nil {
		return err
	}

	return printSummary(deps.Out, theme, opts, result, relativeTarget(result.TargetDir))
}

// resolveChoices layers flags over config defaults. It returns the
// questions already answered by flags or arguments.
func resolveChoices(cmd *cobra.Command, cfg *config.Config, name string) (models.Choices, wizard.Skip) {
	choices := cfg.Choices(name)
	skip := wizard.Skip{}
	if name != "" {
		skip[wizard.IDProjectName] = true
	}

	flags := cmd.Flags()
	for flag, id := range choiceFlags {
		if !flags.Changed(flag) {
			continue
		}
		skip[id] = true
		switch flag {
		case flagFrontend:
			choices.Frontend, _ = flags.GetString(flag)
		case flagOverlay:
			choices.Overlay, _ = flags.GetString(flag)
		case flagBackend:
			choices.Backend, _ = flags.GetString(flag)
		case flagDB:
			choices.DB, _ = flags.GetString(flag)
		case flagWorkers:
			choices.Workers, _ = flags.GetBool(flag)
		case flagGit:
			choices.Git, _ = flags.GetBool(flag)
		}
	}
	return choices, skip
}

// relativeTarget returns dir relative to the working directory when it is
// below it, for the cd hint.
func relativeTarget(dir string) string {
	wd, err := filepath.Abs(".")
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dir
	}
	return rel
}
