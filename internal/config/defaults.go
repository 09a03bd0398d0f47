package config

import "github.com/teehex/teehex/pkg/models"

// Default value constants.
const (
	DefaultWorkers  = false
	DefaultGit      = true
	DefaultLogLevel = "warn"
)

// NewDefaultConfig returns a Config holding the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			Frontend: string(models.DefaultFrontend),
			Overlay:  string(models.DefaultOverlay),
			Backend:  string(models.DefaultBackend),
			DB:       string(models.DefaultDB),
			Workers:  DefaultWorkers,
			Git:      DefaultGit,
		},
		LogLevel: DefaultLogLevel,
	}
}
