package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/teehex/teehex/pkg/models"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "explicit_path",
			env:  map[string]string{EnvConfigPath: "/etc/teehex.yaml", "XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			want: "/etc/teehex.yaml",
		},
		{
			name: "explicit_path_with_tilde",
			env:  map[string]string{EnvConfigPath: "~/teehex.yaml", "HOME": "/home/u"},
			want: "/home/u/teehex.yaml",
		},
		{
			name: "xdg_config_home",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			want: "/xdg/teehex/config.yaml",
		},
		{
			name: "home_fallback",
			env:  map[string]string{"HOME": "/home/u"},
			want: "/home/u/.config/teehex/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Path(envMap(tt.env))
			if err != nil {
				t.Fatalf("Path error: %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("Path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing_file_uses_defaults", func(t *testing.T) {
		l := NewLoader(envMap(map[string]string{EnvConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}), nil)
		cfg, err := l.Load()
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		def := NewDefaultConfig()
		if *cfg != *def {
			t.Errorf("cfg = %+v, want %+v", *cfg, *def)
		}
		if l.Source() != "" {
			t.Errorf("Source = %q, want empty", l.Source())
		}
	})

	t.Run("file_values", func(t *testing.T) {
		p := writeConfig(t, `defaults:
  frontend: vue
  overlay: tailwind
  db: sqlite
  workers: true
  git: false
commit_message: "chore: scaffold"
`)
		l := NewLoader(envMap(map[string]string{EnvConfigPath: p}), nil)
		cfg, err := l.Load()
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Defaults.Frontend != "vue" || cfg.Defaults.Overlay != "tailwind" || cfg.Defaults.DB != "sqlite" {
			t.Errorf("defaults = %+v", cfg.Defaults)
		}
		if cfg.Defaults.Backend != string(models.DefaultBackend) {
			t.Errorf("backend = %q, want built-in default", cfg.Defaults.Backend)
		}
		if !cfg.Defaults.Workers || cfg.Defaults.Git {
			t.Errorf("workers/git = %v/%v", cfg.Defaults.Workers, cfg.Defaults.Git)
		}
		if cfg.CommitMessage != "chore: scaffold" {
			t.Errorf("CommitMessage = %q", cfg.CommitMessage)
		}
		if l.Source() != p {
			t.Errorf("Source = %q, want %q", l.Source(), p)
		}
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		p := writeConfig(t, "defaults:\n  frontend: vue\n  workers: true\n")
		l := NewLoader(envMap(map[string]string{
			EnvConfigPath: p,
			EnvFrontend:   "svelte",
			EnvWorkers:    "false",
			EnvDB:         "neon",
		}), nil)
		cfg, err := l.Load()
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Defaults.Frontend != "svelte" {
			t.Errorf("Frontend = %q, want svelte", cfg.Defaults.Frontend)
		}
		if cfg.Defaults.Workers {
			t.Error("Workers = true, want env override false")
		}
		if cfg.Defaults.DB != "neon" {
			t.Errorf("DB = %q, want neon", cfg.Defaults.DB)
		}
	})

	t.Run("templates_tilde_expanded", func(t *testing.T) {
		l := NewLoader(envMap(map[string]string{
			EnvConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
			EnvTemplates:  "~/tpl",
			"HOME":        "/home/u",
		}), nil)
		cfg, err := l.Load()
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Templates != filepath.FromSlash("/home/u/tpl") {
			t.Errorf("Templates = %q", cfg.Templates)
		}
	})

	t.Run("empty_file", func(t *testing.T) {
		p := writeConfig(t, "")
		cfg, err := NewLoader(envMap(map[string]string{EnvConfigPath: p}), nil).Load()
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Defaults.Git != DefaultGit {
			t.Errorf("Git = %v, want default", cfg.Defaults.Git)
		}
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		p := writeConfig(t, "defaults: [unclosed\n")
		_, err := NewLoader(envMap(map[string]string{EnvConfigPath: p}), nil).Load()
		if !errors.Is(err, ErrInvalidYAML) {
			t.Fatalf("expected ErrInvalidYAML, got: %v", err)
		}
	})

	t.Run("unknown_key", func(t *testing.T) {
		p := writeConfig(t, "defaults:\n  fronted: vue\n")
		_, err := NewLoader(envMap(map[string]string{EnvConfigPath: p}), nil).Load()
		if !errors.Is(err, ErrInvalidYAML) {
			t.Fatalf("expected ErrInvalidYAML, got: %v", err)
		}
	})

	t.Run("unknown_option", func(t *testing.T) {
		p := writeConfig(t, "defaults:\n  db: turso\n")
		_, err := NewLoader(envMap(map[string]string{EnvConfigPath: p}), nil).Load()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got: %v", err)
		}
		if !errors.Is(err, models.ErrUnknownOption) {
			t.Errorf("expected models.ErrUnknownOption in chain, got: %v", err)
		}
	})

	t.Run("bad_bool_env", func(t *testing.T) {
		_, err := NewLoader(envMap(map[string]string{
			EnvConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
			EnvGit:        "sometimes",
		}), nil).Load()
		var verrs *ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected *ValidationErrors, got: %v", err)
		}
		if len(verrs.Errors) != 1 || verrs.Errors[0].Field != EnvGit {
			t.Errorf("errors = %+v", verrs.Errors)
		}
	})
}

func TestConfigChoices(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Defaults.DB = "sqlite"
	c := cfg.Choices("demo")
	if c.ProjectName != "demo" || c.DB != "sqlite" || c.Git != DefaultGit {
		t.Errorf("Choices = %+v", c)
	}
	if _, err := models.NewOptionSet(c); err != nil {
		t.Errorf("default choices do not validate: %v", err)
	}
}
