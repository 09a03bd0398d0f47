package models

import (
	"errors"
	"testing"
)

func TestParseFunctions_Defaults(t *testing.T) {
	t.Parallel()

	if f, err := ParseFrontend(""); err != nil || f != DefaultFrontend {
		t.Errorf("ParseFrontend(\"\") = %q, %v", f, err)
	}
	if o, err := ParseOverlay(" "); err != nil || o != DefaultOverlay {
		t.Errorf("ParseOverlay(\" \") = %q, %v", o, err)
	}
	if b, err := ParseBackend(""); err != nil || b != DefaultBackend {
		t.Errorf("ParseBackend(\"\") = %q, %v", b, err)
	}
	if d, err := ParseDB(""); err != nil || d != DefaultDB {
		t.Errorf("ParseDB(\"\") = %q, %v", d, err)
	}
}

func TestParseFunctions_CaseInsensitive(t *testing.T) {
	t.Parallel()

	f, err := ParseFrontend("Svelte")
	if err != nil || f != FrontendSvelte {
		t.Errorf("ParseFrontend(Svelte) = %q, %v", f, err)
	}
	d, err := ParseDB("NEON")
	if err != nil || d != DBNeon {
		t.Errorf("ParseDB(NEON) = %q, %v", d, err)
	}
}

func TestParseFunctions_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseFrontend("angular"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("ParseFrontend(angular) error = %v, want ErrUnknownOption", err)
	}
	if _, err := ParseOverlay("bootstrap"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("ParseOverlay(bootstrap) error = %v", err)
	}
	if _, err := ParseBackend("cloudflare"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("ParseBackend(cloudflare) error = %v", err)
	}
	if _, err := ParseDB("mysql"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("ParseDB(mysql) error = %v", err)
	}
}

func TestDBFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		db     DB
		family DBFamily
	}{
		{DBMemory, FamilyMemory},
		{DBSQLite, FamilySQLite},
		{DBPostgres, FamilyPostgres},
		{DBNeon, FamilyPostgres},
		{DBSupabase, FamilyPostgres},
	}
	for _, tt := range tests {
		if got := tt.db.Family(); got != tt.family {
			t.Errorf("%s.Family() = %q, want %q", tt.db, got, tt.family)
		}
	}
}

func TestDBLabelsDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]DB)
	for _, d := range AllDBs() {
		label := d.Label()
		if prev, dup := seen[label]; dup {
			t.Errorf("label %q shared by %s and %s", label, prev, d)
		}
		seen[label] = d
	}
}

func TestMenusCoverEnumerations(t *testing.T) {
	t.Parallel()

	check := func(name string, choices []Choice, values []string) {
		available := make(map[string]bool)
		for _, c := range choices {
			if !c.Planned {
				available[c.Value] = true
			}
		}
		if len(available) != len(values) {
			t.Errorf("%s menu has %d selectable entries, want %d", name, len(available), len(values))
		}
		for _, v := range values {
			if !available[v] {
				t.Errorf("%s menu is missing %q", name, v)
			}
		}
	}

	check("frontend", FrontendChoices(), stringsOf(AllFrontends()))
	check("overlay", OverlayChoices(), stringsOf(AllOverlays()))
	check("backend", BackendChoices(), stringsOf(AllBackends()))
	check("db", DBChoices(), stringsOf(AllDBs()))
}

func TestNewOptionSet(t *testing.T) {
	t.Parallel()

	opts, err := NewOptionSet(Choices{
		ProjectName: "My Todo App",
		Frontend:    "vue",
		Overlay:     "tailwind",
		DB:          "supabase",
		Workers:     true,
	})
	if err != nil {
		t.Fatalf("NewOptionSet error: %v", err)
	}
	if opts.ProjectName != "my-todo-app" {
		t.Errorf("ProjectName = %q", opts.ProjectName)
	}
	if opts.Backend != BackendVercel {
		t.Errorf("Backend = %q, want default", opts.Backend)
	}
	if !opts.WorkersEnabled || opts.GitEnabled {
		t.Errorf("flags = workers:%t git:%t", opts.WorkersEnabled, opts.GitEnabled)
	}

	if _, err := NewOptionSet(Choices{ProjectName: "---"}); !errors.Is(err, ErrInvalidProjectName) {
		t.Errorf("NewOptionSet(---) error = %v, want ErrInvalidProjectName", err)
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
