package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/teehex/teehex/pkg/models"
)

// Dynamic token patterns that must not appear in configuration values.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	if errs := validate(cfg); len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateChoice("defaults.frontend", cfg.Defaults.Frontend, func(s string) error {
		_, err := models.ParseFrontend(s)
		return err
	})...)
	errs = append(errs, validateChoice("defaults.overlay", cfg.Defaults.Overlay, func(s string) error {
		_, err := models.ParseOverlay(s)
		return err
	})...)
	errs = append(errs, validateChoice("defaults.backend", cfg.Defaults.Backend, func(s string) error {
		_, err := models.ParseBackend(s)
		return err
	})...)
	errs = append(errs, validateChoice("defaults.db", cfg.Defaults.DB, func(s string) error {
		_, err := models.ParseDB(s)
		return err
	})...)

	if cfg.LogLevel != "" && !isValidLogLevel(cfg.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   cfg.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}

	errs = append(errs, checkStringField("templates", cfg.Templates)...)
	errs = append(errs, checkStringField("commit_message", cfg.CommitMessage)...)

	return errs
}

func validateChoice(field, value string, parse func(string) error) []ValidationError {
	if err := parse(value); err != nil {
		return []ValidationError{{
			Field:   field,
			Message: "unknown option",
			Value:   value,
			Wrapped: err,
		}}
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
