package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the variable that points at an explicit config file.
const EnvConfigPath = "TEEHEX_CONFIG"

// Path returns the config file location: $TEEHEX_CONFIG, then
// $XDG_CONFIG_HOME/teehex/config.yaml, then ~/.config/teehex/config.yaml.
// The file need not exist.
func Path(getenv func(string) string) (string, error) {
	if p := getenv(EnvConfigPath); p != "" {
		return expandHome(p, getenv)
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teehex", "config.yaml"), nil
	}
	home, err := homeDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "teehex", "config.yaml"), nil
}

// Loader resolves the effective configuration: built-in defaults, then the
// config file, then TEEHEX_* environment variables.
type Loader struct {
	getenv func(string) string
	logger *slog.Logger
	source string
}

// NewLoader creates a Loader. A nil getenv reads the process environment;
// a nil logger discards output.
func NewLoader(getenv func(string) string, logger *slog.Logger) *Loader {
	if getenv == nil {
		getenv = os.Getenv
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{getenv: getenv, logger: logger.With("module", "config")}
}

// Load returns the validated configuration. A missing file yields the
// built-in defaults; an unreadable or malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefaultConfig()

	path, err := Path(l.getenv)
	if err != nil {
		return nil, err
	}

	loaded, err := LoadFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if loaded {
		l.source = path
		l.logger.Debug("config file loaded", "path", path)
	} else {
		l.logger.Debug("config file not found, using defaults", "path", path)
	}

	errs := applyEnv(cfg, l.getenv)
	if cfg.Templates != "" {
		expanded, err := expandHome(cfg.Templates, l.getenv)
		if err != nil {
			return nil, err
		}
		cfg.Templates = expanded
	}

	errs = append(errs, validate(cfg)...)
	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}
	return cfg, nil
}

// Source returns the config file read by the last Load, or "".
func (l *Loader) Source() string {
	return l.source
}

// LoadFile decodes the YAML file at path over cfg. It returns (false, nil)
// when the file does not exist. Unknown keys are rejected.
func LoadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return true, nil
}

func homeDir(getenv func(string) string) (string, error) {
	if home := getenv("HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return home, nil
}

func expandHome(p string, getenv func(string) string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := homeDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
