package models

// Choice is one entry of an interactive single-choice menu. Planned
// entries are listed but cannot be selected yet.
type Choice struct {
	Value   string
	Label   string
	Desc    string
	Planned bool
}

// FrontendChoices returns the frontend menu.
func FrontendChoices() []Choice {
	return []Choice{
		{Value: string(FrontendReact), Label: "React", Desc: "React 19 + Vite"},
		{Value: string(FrontendVue), Label: "Vue", Desc: "Vue 3 + Vite"},
		{Value: string(FrontendSvelte), Label: "Svelte", Desc: "Svelte 5 + Vite"},
		{Value: string(FrontendSolid), Label: "Solid", Desc: "SolidJS + Vite"},
		{Value: string(FrontendPreact), Label: "Preact", Desc: "Preact + Vite"},
		{Value: "angular", Label: "Angular", Desc: "Angular standalone", Planned: true},
	}
}

// OverlayChoices returns the styling overlay menu.
func OverlayChoices() []Choice {
	return []Choice{
		{Value: string(OverlayNone), Label: "None", Desc: "Plain CSS"},
		{Value: string(OverlayTailwind), Label: "Tailwind CSS", Desc: "Utility-first CSS"},
		{Value: string(OverlayDaisyUI), Label: "daisyUI", Desc: "Tailwind component classes"},
		{Value: string(OverlayPico), Label: "Pico CSS", Desc: "Classless semantic styles"},
	}
}

// BackendChoices returns the backend target menu.
func BackendChoices() []Choice {
	return []Choice{
		{Value: string(BackendVercel), Label: "Vercel Functions", Desc: "Node.js serverless functions"},
		{Value: "cloudflare", Label: "Cloudflare Workers", Desc: "Edge runtime", Planned: true},
	}
}

// DBChoices returns the persistence provider menu.
func DBChoices() []Choice {
	return []Choice{
		{Value: string(DBMemory), Label: DBMemory.Label(), Desc: "Process-local, resets on restart"},
		{Value: string(DBSQLite), Label: DBSQLite.Label(), Desc: "File-backed via better-sqlite3"},
		{Value: string(DBPostgres), Label: DBPostgres.Label(), Desc: "Any Postgres server"},
		{Value: string(DBNeon), Label: DBNeon.Label(), Desc: "Serverless Postgres"},
		{Value: string(DBSupabase), Label: DBSupabase.Label(), Desc: "Supabase Postgres"},
		{Value: "turso", Label: "Turso", Desc: "libSQL edge database", Planned: true},
	}
}

// Label returns the human-readable provider name.
func (d DB) Label() string {
	switch d {
	case DBSQLite:
		return "SQLite"
	case DBPostgres:
		return "PostgreSQL"
	case DBNeon:
		return "Neon (Postgres)"
	case DBSupabase:
		return "Supabase (Postgres)"
	default:
		return "In-memory"
	}
}

// Label returns the menu label of f.
func (f Frontend) Label() string { return choiceLabel(FrontendChoices(), string(f)) }

// Label returns the menu label of o.
func (o Overlay) Label() string { return choiceLabel(OverlayChoices(), string(o)) }

// Label returns the menu label of b.
func (b Backend) Label() string { return choiceLabel(BackendChoices(), string(b)) }

func choiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
