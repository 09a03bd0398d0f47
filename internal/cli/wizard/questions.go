package wizard

import (
	"strconv"

	"github.com/teehex/teehex/pkg/models"
)

// Question IDs.
const (
	IDProjectName = "project_name"
	IDFrontend    = "frontend"
	IDOverlay     = "overlay"
	IDBackend     = "backend"
	IDDB          = "db"
	IDWorkers     = "workers"
	IDGit         = "git"
)

// DefaultProjectName is offered when no name default is known.
const DefaultProjectName = "my-teehex-app"

// Skip marks options fixed by flags; their questions are not asked.
type Skip map[string]bool

// Questions returns the generation questions in prompt order, seeded with
// defaults and without the IDs in skip.
func Questions(defaults models.Choices, skip Skip) []Question {
	name := defaults.ProjectName
	if name == "" {
		name = DefaultProjectName
	}

	all := []Question{
		{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Lowercase letters, digits and hyphens. Also the target directory.",
			Default:     name,
			Validate:    models.NormalizeProjectName,
		},
		selectQuestion(IDFrontend, "Frontend", models.FrontendChoices(), defaults.Frontend, string(models.DefaultFrontend)),
		selectQuestion(IDOverlay, "Styling overlay", models.OverlayChoices(), defaults.Overlay, string(models.DefaultOverlay)),
		selectQuestion(IDBackend, "Backend", models.BackendChoices(), defaults.Backend, string(models.DefaultBackend)),
		selectQuestion(IDDB, "Database", models.DBChoices(), defaults.DB, string(models.DefaultDB)),
		{
			ID:          IDWorkers,
			Type:        QuestionTypeConfirm,
			Title:       "Enable worker threads?",
			Description: "Adds the /api/heavy endpoint and a browser Web Worker demo.",
			Default:     strconv.FormatBool(defaults.Workers),
		},
		{
			ID:      IDGit,
			Type:    QuestionTypeConfirm,
			Title:   "Initialize a git repository?",
			Default: strconv.FormatBool(defaults.Git),
		},
	}

	out := make([]Question, 0, len(all))
	for _, q := range all {
		if !skip[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

func selectQuestion(id, title string, choices []models.Choice, def, fallback string) Question {
	if def == "" {
		def = fallback
	}
	opts := make([]Option, len(choices))
	for i, c := range choices {
		opts[i] = Option{Label: c.Label, Value: c.Value, Desc: c.Desc, Planned: c.Planned}
	}
	return Question{ID: id, Type: QuestionTypeSelect, Title: title, Options: opts, Default: def}
}

// Apply copies answers into c. Unanswered fields keep their value.
func Apply(answers Answers, c *models.Choices) {
	for id, v := range answers {
		switch id {
		case IDProjectName:
			c.ProjectName = v
		case IDFrontend:
			c.Frontend = v
		case IDOverlay:
			c.Overlay = v
		case IDBackend:
			c.Backend = v
		case IDDB:
			c.DB = v
		case IDWorkers:
			c.Workers = v == "true"
		case IDGit:
			c.Git = v == "true"
		}
	}
}
