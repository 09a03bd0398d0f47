// Package synth derives the non-templated files of a generated project
// from its OptionSet: root manifests, compiler and deployment config,
// environment sample, README, and the container wiring module.
//
// Every function is a pure function of the OptionSet.
package synth

import (
	"embed"
	"fmt"

	"github.com/teehex/teehex/internal/defs"
	"github.com/teehex/teehex/internal/template"
	"github.com/teehex/teehex/pkg/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var renderer = template.NewRenderer(templatesFS)

// File is one synthesized file, addressed relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// templateData is the render context shared by every text template.
type templateData struct {
	ProjectName   string
	FrontendLabel string
	OverlayLabel  string
	BackendLabel  string
	Provider      string
	Label         string
	Factory       string
	Workers       bool
	Memory        bool
	SQLite        bool
	Postgres      bool
}

func newTemplateData(opts models.OptionSet) templateData {
	db := template.ResolveDB(opts.DB)
	return templateData{
		ProjectName:   opts.ProjectName,
		FrontendLabel: opts.Frontend.Label(),
		OverlayLabel:  opts.Overlay.Label(),
		BackendLabel:  opts.Backend.Label(),
		Provider:      string(db.Provider),
		Label:         db.Label,
		Factory:       db.Factory,
		Workers:       opts.WorkersEnabled,
		Memory:        db.Family == models.FamilyMemory,
		SQLite:        db.Family == models.FamilySQLite,
		Postgres:      db.Family == models.FamilyPostgres,
	}
}

func render(name string, opts models.OptionSet) ([]byte, error) {
	out, err := renderer.Render("templates/"+name, newTemplateData(opts))
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", name, err)
	}
	return out, nil
}

// RootFiles returns the project-root files written after the fragments
// are copied, in write order.
func RootFiles(opts models.OptionSet) ([]File, error) {
	builders := []struct {
		path  string
		build func(models.OptionSet) ([]byte, error)
	}{
		{defs.PackageJSON, RootManifest},
		{defs.TSConfigJSON, CompilerConfig},
		{defs.VercelJSON, DeploymentConfig},
		{defs.WorkspaceYAML, WorkspaceFile},
		{defs.EnvExample, EnvSample},
		{defs.GitIgnore, IgnoreFile},
		{defs.ReadmeMD, Readme},
	}

	files := make([]File, 0, len(builders))
	for _, b := range builders {
		content, err := b.build(opts)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: b.path, Content: content})
	}
	return files, nil
}

// WiringFiles returns the container module and the dev route table.
func WiringFiles(opts models.OptionSet) ([]File, error) {
	container, err := Container(opts)
	if err != nil {
		return nil, err
	}
	routes, err := DevRoutes(opts)
	if err != nil {
		return nil, err
	}
	return []File{
		{Path: defs.ContainerTS, Content: container},
		{Path: defs.DevRoutesTS, Content: routes},
	}, nil
}

// EnvSample returns .env.example: the selected provider's active settings
// followed by commented settings for every provider family.
func EnvSample(opts models.OptionSet) ([]byte, error) {
	return render("env.example.tmpl", opts)
}

// IgnoreFile returns .gitignore.
func IgnoreFile(opts models.OptionSet) ([]byte, error) {
	return render("gitignore.tmpl", opts)
}

// Readme returns README.md.
func Readme(opts models.OptionSet) ([]byte, error) {
	return render("README.md.tmpl", opts)
}

// Container returns src/bootstrap/container.ts. The db choice selects the
// adapter factory; the worker field, import and construction exist only
// when workers are enabled.
func Container(opts models.OptionSet) ([]byte, error) {
	return render("container.ts.tmpl", opts)
}

// DevRoutes returns the route table of the local API server.
func DevRoutes(opts models.OptionSet) ([]byte, error) {
	return render("routes.ts.tmpl", opts)
}
