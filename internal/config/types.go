package config

import "github.com/teehex/teehex/pkg/models"

// Config is the user configuration. Every field is optional in the file.
//
//	defaults:
//	  frontend: vue
//	  overlay: tailwind
//	  backend: vercel
//	  db: sqlite
//	  workers: true
//	  git: true
//	templates: ~/src/teehex-templates
//	commit_message: "chore: scaffold"
//	log_level: info
type Config struct {
	Defaults      Defaults `yaml:"defaults"`
	Templates     string   `yaml:"templates"`
	CommitMessage string   `yaml:"commit_message"`
	LogLevel      string   `yaml:"log_level"`
}

// Defaults are the option values offered as prompt defaults and used as-is
// in non-interactive runs.
type Defaults struct {
	Frontend string `yaml:"frontend"`
	Overlay  string `yaml:"overlay"`
	Backend  string `yaml:"backend"`
	DB       string `yaml:"db"`
	Workers  bool   `yaml:"workers"`
	Git      bool   `yaml:"git"`
}

// Choices returns the defaults as raw choices for the named project.
func (c *Config) Choices(projectName string) models.Choices {
	return models.Choices{
		ProjectName: projectName,
		Frontend:    c.Defaults.Frontend,
		Overlay:     c.Defaults.Overlay,
		Backend:     c.Defaults.Backend,
		DB:          c.Defaults.DB,
		Workers:     c.Defaults.Workers,
		Git:         c.Defaults.Git,
	}
}
