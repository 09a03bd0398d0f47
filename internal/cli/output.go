package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/teehex/teehex/internal/core/project"
	"github.com/teehex/teehex/internal/template"
	"github.com/teehex/teehex/internal/ui"
	"github.com/teehex/teehex/pkg/models"
)

// printSummary writes the result card and the next-steps guide.
func printSummary(w io.Writer, theme *ui.Theme, opts models.OptionSet, res *project.GenerateResult, displayDir string) error {
	rows := []ui.KeyValue{
		{Key: "Location", Value: res.TargetDir},
		{Key: "Frontend", Value: opts.Frontend.Label()},
		{Key: "Overlay", Value: opts.Overlay.Label()},
		{Key: "Backend", Value: opts.Backend.Label()},
		{Key: "Database", Value: opts.DB.Label()},
		{Key: "Workers", Value: yesNo(opts.WorkersEnabled)},
		{Key: "Git", Value: res.VCS.Kind.String()},
		{Key: "Files", Value: strconv.Itoa(len(res.Files))},
	}
	details := []string{theme.KeyValues(rows)}
	if len(res.Warnings) > 0 {
		details = append(details, "")
		for _, warning := range res.Warnings {
			details = append(details, theme.SymWarning()+" "+theme.Warn(warning))
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, theme.Card(theme.SymSuccess()+" Project "+opts.ProjectName+" created", details...))

	guide, err := theme.RenderMarkdown(nextSteps(opts, displayDir))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(w, guide)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// nextSteps returns the markdown guide shown after generation.
func nextSteps(opts models.OptionSet, dir string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")

	step := 0
	add := func(format string, args ...any) {
		step++
		fmt.Fprintf(&b, "%d. "+format+"\n", append([]any{step}, args...)...)
	}

	add("`cd %s`", dir)
	add("`pnpm install`")
	switch opts.DB.Family() {
	case models.FamilyPostgres:
		add("`cp .env.example .env` and set `DATABASE_URL` for %s", opts.DB.Label())
	case models.FamilySQLite:
		add("`cp .env.example .env` (the database file defaults to `./data/todos.sqlite`)")
	}
	add("`pnpm dev` starts the web app with the API on port %d", project.DevAPIPort)
	add("`pnpm typecheck` type-checks the API and the core")
	add("`vercel deploy` publishes the frontend and the `api/` functions")

	db := template.ResolveDB(opts.DB)
	fmt.Fprintf(&b, "\nPersistence lives in `src/adapters/persistence/todo-repo.ts` (`%s`).\n", db.Factory)
	if opts.WorkersEnabled {
		b.WriteString("Try `GET /api/heavy?iterations=1000000` to run a task on a worker thread.\n")
	}
	return b.String()
}
