package config

import (
	"strconv"
	"strings"
)

// Environment variables that override file values.
const (
	EnvFrontend      = "TEEHEX_FRONTEND"
	EnvOverlay       = "TEEHEX_OVERLAY"
	EnvBackend       = "TEEHEX_BACKEND"
	EnvDB            = "TEEHEX_DB"
	EnvWorkers       = "TEEHEX_WORKERS"
	EnvGit           = "TEEHEX_GIT"
	EnvTemplates     = "TEEHEX_TEMPLATES"
	EnvCommitMessage = "TEEHEX_COMMIT_MESSAGE"
	EnvLogLevel      = "TEEHEX_LOG_LEVEL"
)

// applyEnv overrides cfg with every non-empty TEEHEX_* variable.
func applyEnv(cfg *Config, getenv func(string) string) []ValidationError {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvFrontend, &cfg.Defaults.Frontend},
		{EnvOverlay, &cfg.Defaults.Overlay},
		{EnvBackend, &cfg.Defaults.Backend},
		{EnvDB, &cfg.Defaults.DB},
		{EnvTemplates, &cfg.Templates},
		{EnvCommitMessage, &cfg.CommitMessage},
		{EnvLogLevel, &cfg.LogLevel},
	}
	for _, s := range strs {
		if v := strings.TrimSpace(getenv(s.key)); v != "" {
			*s.dst = v
		}
	}

	var errs []ValidationError
	bools := []struct {
		key string
		dst *bool
	}{
		{EnvWorkers, &cfg.Defaults.Workers},
		{EnvGit, &cfg.Defaults.Git},
	}
	for _, b := range bools {
		v := strings.TrimSpace(getenv(b.key))
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   b.key,
				Message: "must be a boolean (true, false, 1, 0)",
				Value:   v,
				Wrapped: ErrInvalidConfig,
			})
			continue
		}
		*b.dst = parsed
	}
	return errs
}
