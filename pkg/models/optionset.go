package models

import "fmt"

// OptionSet is the fully resolved record of user choices for one
// generation run. Build it with NewOptionSet; copies are passed by value.
type OptionSet struct {
	ProjectName    string
	Frontend       Frontend
	Overlay        Overlay
	Backend        Backend
	DB             DB
	WorkersEnabled bool
	GitEnabled     bool
}

// Choices carries raw, unvalidated option values.
type Choices struct {
	ProjectName string
	Frontend    string
	Overlay     string
	Backend     string
	DB          string
	Workers     bool
	Git         bool
}

// NewOptionSet validates raw choices and returns the immutable OptionSet.
// The project name is normalized; empty enum values take their defaults.
func NewOptionSet(c Choices) (OptionSet, error) {
	name, err := NormalizeProjectName(c.ProjectName)
	if err != nil {
		return OptionSet{}, err
	}
	fe, err := ParseFrontend(c.Frontend)
	if err != nil {
		return OptionSet{}, err
	}
	ov, err := ParseOverlay(c.Overlay)
	if err != nil {
		return OptionSet{}, err
	}
	be, err := ParseBackend(c.Backend)
	if err != nil {
		return OptionSet{}, err
	}
	db, err := ParseDB(c.DB)
	if err != nil {
		return OptionSet{}, err
	}

	return OptionSet{
		ProjectName:    name,
		Frontend:       fe,
		Overlay:        ov,
		Backend:        be,
		DB:             db,
		WorkersEnabled: c.Workers,
		GitEnabled:     c.Git,
	}, nil
}

// String returns a compact single-line description for logs.
func (o OptionSet) String() string {
	return fmt.Sprintf("%s (frontend=%s overlay=%s backend=%s db=%s workers=%t git=%t)",
		o.ProjectName, o.Frontend, o.Overlay, o.Backend, o.DB, o.WorkersEnabled, o.GitEnabled)
}
