package wizard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/teehex/teehex/internal/ui"
	"github.com/teehex/teehex/pkg/models"
)

func runLines(t *testing.T, input string, questions []Question) (Answers, string, error) {
	t.Helper()
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader(input), &out, ui.NewTheme(true))
	answers, err := p.Run(context.Background(), questions)
	return answers, out.String(), err
}

func question(t *testing.T, id string) Question {
	t.Helper()
	for _, q := range Questions(models.Choices{}, nil) {
		if q.ID == id {
			return q
		}
	}
	t.Fatalf("no question %q", id)
	return Question{}
}

func TestQuestions(t *testing.T) {
	t.Run("order_and_defaults", func(t *testing.T) {
		qs := Questions(models.Choices{Workers: true}, nil)
		ids := make([]string, len(qs))
		for i, q := range qs {
			ids[i] = q.ID
		}
		want := "project_name,frontend,overlay,backend,db,workers,git"
		if got := strings.Join(ids, ","); got != want {
			t.Errorf("ids = %s, want %s", got, want)
		}
		if qs[0].Default != DefaultProjectName {
			t.Errorf("name default = %q", qs[0].Default)
		}
		if qs[1].Default != string(models.DefaultFrontend) {
			t.Errorf("frontend default = %q", qs[1].Default)
		}
		if qs[5].Default != "true" {
			t.Errorf("workers default = %q, want true", qs[5].Default)
		}
	})

	t.Run("skip", func(t *testing.T) {
		qs := Questions(models.Choices{}, Skip{IDProjectName: true, IDDB: true})
		for _, q := range qs {
			if q.ID == IDProjectName || q.ID == IDDB {
				t.Errorf("skipped question %q asked", q.ID)
			}
		}
		if len(qs) != 5 {
			t.Errorf("len = %d, want 5", len(qs))
		}
	})
}

func TestApply(t *testing.T) {
	c := models.Choices{ProjectName: "keep", DB: "sqlite"}
	Apply(Answers{IDFrontend: "vue", IDWorkers: "true", IDGit: "false"}, &c)
	if c.ProjectName != "keep" || c.DB != "sqlite" {
		t.Errorf("unanswered fields changed: %+v", c)
	}
	if c.Frontend != "vue" || !c.Workers || c.Git {
		t.Errorf("answers not applied: %+v", c)
	}
}

func TestLinePrompterSelect(t *testing.T) {
	t.Run("empty_input_takes_default", func(t *testing.T) {
		answers, out, err := runLines(t, "\n", []Question{question(t, IDDB)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDDB] != string(models.DefaultDB) {
			t.Errorf("db = %q", answers[IDDB])
		}
		if !strings.Contains(out, "1) In-memory") || !strings.Contains(out, "(default)") {
			t.Errorf("menu not printed:\n%s", out)
		}
	})

	t.Run("numbered_choice", func(t *testing.T) {
		answers, _, err := runLines(t, "2\n", []Question{question(t, IDDB)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDDB] != string(models.DBSQLite) {
			t.Errorf("db = %q, want sqlite", answers[IDDB])
		}
	})

	t.Run("invalid_then_valid", func(t *testing.T) {
		answers, out, err := runLines(t, "abc\n99\n0\n3\n", []Question{question(t, IDDB)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDDB] != string(models.DBPostgres) {
			t.Errorf("db = %q, want postgres", answers[IDDB])
		}
		if n := strings.Count(out, "Enter a number between 1 and 6."); n != 3 {
			t.Errorf("warnings = %d, want 3:\n%s", n, out)
		}
	})

	t.Run("planned_rejected", func(t *testing.T) {
		answers, out, err := runLines(t, "6\n4\n", []Question{question(t, IDDB)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDDB] != string(models.DBNeon) {
			t.Errorf("db = %q, want neon", answers[IDDB])
		}
		if !strings.Contains(out, "Turso is planned and not available yet.") {
			t.Errorf("planned warning missing:\n%s", out)
		}
		if strings.Contains(out, "Enter a number") {
			t.Errorf("planned entry reported as out of range:\n%s", out)
		}
	})
}

func TestLinePrompterConfirm(t *testing.T) {
	tests := []struct {
		name  string
		def   bool
		input string
		want  string
		warns int
	}{
		{name: "default_no", def: false, input: "\n", want: "false"},
		{name: "default_yes", def: true, input: "\n", want: "true"},
		{name: "yes", def: false, input: "y\n", want: "true"},
		{name: "no_word", def: true, input: "No\n", want: "false"},
		{name: "invalid_then_yes", def: false, input: "maybe\nyes\n", want: "true", warns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Questions(models.Choices{Workers: tt.def}, nil)[5]
			answers, out, err := runLines(t, tt.input, []Question{q})
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if answers[IDWorkers] != tt.want {
				t.Errorf("workers = %q, want %q", answers[IDWorkers], tt.want)
			}
			if n := strings.Count(out, "Answer y or n."); n != tt.warns {
				t.Errorf("warnings = %d, want %d", n, tt.warns)
			}
			hint := "[y/N]"
			if tt.def {
				hint = "[Y/n]"
			}
			if !strings.Contains(out, hint) {
				t.Errorf("hint %s missing:\n%s", hint, out)
			}
		})
	}
}

func TestLinePrompterProjectName(t *testing.T) {
	t.Run("normalized", func(t *testing.T) {
		answers, _, err := runLines(t, "My App!!\n", []Question{question(t, IDProjectName)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDProjectName] != "my-app" {
			t.Errorf("name = %q, want my-app", answers[IDProjectName])
		}
	})

	t.Run("default", func(t *testing.T) {
		answers, _, err := runLines(t, "\n", []Question{question(t, IDProjectName)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDProjectName] != DefaultProjectName {
			t.Errorf("name = %q", answers[IDProjectName])
		}
	})

	t.Run("invalid_reprompts", func(t *testing.T) {
		answers, out, err := runLines(t, "---\ndemo\n", []Question{question(t, IDProjectName)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDProjectName] != "demo" {
			t.Errorf("name = %q", answers[IDProjectName])
		}
		if !strings.Contains(out, models.ErrInvalidProjectName.Error()) {
			t.Errorf("validation warning missing:\n%s", out)
		}
	})
}

func TestLinePrompterEndOfInput(t *testing.T) {
	t.Run("closed_mid_run", func(t *testing.T) {
		qs := Questions(models.Choices{}, nil)
		_, _, err := runLines(t, "demo\n", qs)
		if !errors.Is(err, ErrInputClosed) {
			t.Fatalf("expected ErrInputClosed, got: %v", err)
		}
	})

	t.Run("last_line_without_newline", func(t *testing.T) {
		answers, _, err := runLines(t, "2", []Question{question(t, IDFrontend)})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if answers[IDFrontend] != string(models.FrontendVue) {
			t.Errorf("frontend = %q, want vue", answers[IDFrontend])
		}
	})

	t.Run("no_questions", func(t *testing.T) {
		_, _, err := runLines(t, "", nil)
		if !errors.Is(err, ErrNoQuestions) {
			t.Fatalf("expected ErrNoQuestions, got: %v", err)
		}
	})
}

func TestLinePrompterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewLinePrompter(strings.NewReader("1\n"), &bytes.Buffer{}, ui.NewTheme(true))
	if _, err := p.Run(ctx, []Question{question(t, IDFrontend)}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestFormValidators(t *testing.T) {
	t.Run("select_rejects_planned", func(t *testing.T) {
		q := question(t, IDFrontend)
		v := selectValidator(&q)
		if err := v("angular"); err == nil || !strings.Contains(err.Error(), "planned") {
			t.Errorf("planned value accepted: %v", err)
		}
		if err := v("svelte"); err != nil {
			t.Errorf("svelte rejected: %v", err)
		}
	})

	t.Run("input_normalizes", func(t *testing.T) {
		q := question(t, IDProjectName)
		var out string
		v := inputValidator(&q, &out)
		if err := v("  Hello World "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "hello-world" {
			t.Errorf("out = %q", out)
		}
		if err := v("!!!"); !errors.Is(err, models.ErrInvalidProjectName) {
			t.Errorf("expected ErrInvalidProjectName, got: %v", err)
		}
		if err := v(""); err != nil || out != DefaultProjectName {
			t.Errorf("empty input: out=%q err=%v", out, err)
		}
	})

	t.Run("option_key", func(t *testing.T) {
		got := optionKey(Option{Label: "Turso", Desc: "libSQL edge database", Planned: true})
		if got != "Turso - libSQL edge database (planned)" {
			t.Errorf("optionKey = %q", got)
		}
	})
}

func TestNewPicksPrompter(t *testing.T) {
	hm := ui.NewHeadlessManager(strings.NewReader(""))
	if _, ok := New(strings.NewReader(""), &bytes.Buffer{}, hm, ui.NewTheme(true)).(*LinePrompter); !ok {
		t.Error("headless input did not get a LinePrompter")
	}
	hm.ForceHeadless(false)
	if _, ok := New(strings.NewReader(""), &bytes.Buffer{}, hm, ui.NewTheme(true)).(*FormPrompter); !ok {
		t.Error("terminal input did not get a FormPrompter")
	}
}
