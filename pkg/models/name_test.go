package models

import (
	"errors"
	"testing"
)

func TestNormalizeProjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"My App!!", "my-app"},
		{"my-app", "my-app"},
		{"  Hello   World  ", "hello-world"},
		{"--Leading--and--trailing--", "leading-and-trailing"},
		{"Café Déjà Vu", "cafe-deja-vu"},
		{"v2_API.service", "v2-api-service"},
		{"UPPER", "upper"},
		{"a&&&b", "a-b"},
		{"123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeProjectName(tt.raw)
			if err != nil {
				t.Fatalf("NormalizeProjectName(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeProjectName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeProjectName_NonASCII(t *testing.T) {
	t.Parallel()

	// Letters with a compatibility or combining-mark decomposition fold to
	// ASCII; letters without one are dropped like any other character.
	tests := []struct {
		raw  string
		want string
	}{
		{"Café App", "cafe-app"},
		{"Cafe\u0301 App", "cafe-app"},
		{"Ñandú", "nandu"},
		{"ﬁle server", "file-server"},
		{"Ｔｏｄｏ", "todo"},
		{"straße", "stra-e"},
		{"todo日本app", "todo-app"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeProjectName(tt.raw)
			if err != nil {
				t.Fatalf("NormalizeProjectName(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeProjectName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeProjectName_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "---", "!!!", "   ", "日本語"} {
		if _, err := NormalizeProjectName(raw); !errors.Is(err, ErrInvalidProjectName) {
			t.Errorf("NormalizeProjectName(%q) error = %v, want ErrInvalidProjectName", raw, err)
		}
	}
}

func TestNormalizeProjectName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"My App!!", "Ünïcödé name", "a--b__c", "  x  ", "Release 2.0 (beta)"}
	for _, raw := range inputs {
		once, err := NormalizeProjectName(raw)
		if err != nil {
			t.Fatalf("NormalizeProjectName(%q) error: %v", raw, err)
		}
		twice, err := NormalizeProjectName(once)
		if err != nil {
			t.Fatalf("NormalizeProjectName(%q) error: %v", once, err)
		}
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}
