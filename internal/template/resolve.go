package template

import (
	"path"

	"github.com/teehex/teehex/pkg/models"
)

// DBTemplate is the resolved persistence fragment for one db provider.
// Several providers share one AdapterFolder; Label stays provider specific.
type DBTemplate struct {
	Provider      models.DB
	Family        models.DBFamily
	AdapterFolder string
	AdapterFile   string
	Factory       string
	Label         string
}

// FrontendFolder returns the fragment folder of f.
func FrontendFolder(f models.Frontend) string {
	switch f {
	case models.FrontendReact:
		return frontendPrefix + "react"
	case models.FrontendVue:
		return frontendPrefix + "vue"
	case models.FrontendSvelte:
		return frontendPrefix + "svelte"
	case models.FrontendSolid:
		return frontendPrefix + "solid"
	case models.FrontendPreact:
		return frontendPrefix + "preact"
	default:
		return FrontendFolder(models.DefaultFrontend)
	}
}

// BackendFolder returns the fragment folder of b.
func BackendFolder(b models.Backend) string {
	switch b {
	case models.BackendVercel:
		return backendPrefix + "vercel"
	default:
		return BackendFolder(models.DefaultBackend)
	}
}

// OverlayFolder returns the fragment folder holding overlay.json for o,
// or "" for the none overlay.
func OverlayFolder(o models.Overlay) string {
	switch o {
	case models.OverlayTailwind, models.OverlayDaisyUI, models.OverlayPico:
		return path.Join(OverlaysRoot, string(o), overlayVariant)
	default:
		return ""
	}
}

// OverlayStylesheet returns the stylesheet file name an overlay installs
// next to the frontend entry module, or "" for none.
func OverlayStylesheet(o models.Overlay) string {
	if OverlayFolder(o) == "" {
		return ""
	}
	return string(o) + ".css"
}

// ResolveDB maps a db provider to its adapter fragment and display label.
func ResolveDB(db models.DB) DBTemplate {
	t := DBTemplate{Provider: db, Family: db.Family(), Label: db.Label()}

	switch t.Family {
	case models.FamilySQLite:
		t.AdapterFolder = path.Join(DBAdaptersRoot, "sqlite")
		t.AdapterFile = "create-sqlite-todo-repo.ts"
		t.Factory = "createSqliteTodoRepo"
	case models.FamilyPostgres:
		t.AdapterFolder = path.Join(DBAdaptersRoot, "postgres")
		t.AdapterFile = "create-postgres-todo-repo.ts"
		t.Factory = "createPostgresTodoRepo"
	default:
		t.Family = models.FamilyMemory
		t.AdapterFolder = path.Join(DBAdaptersRoot, "in-memory")
		t.AdapterFile = "create-in-memory-todo-repo.ts"
		t.Factory = "createInMemoryTodoRepo"
	}
	return t
}

// AdapterPath returns the library path of the adapter implementation file.
func (t DBTemplate) AdapterPath() string {
	return path.Join(t.AdapterFolder, t.AdapterFile)
}
