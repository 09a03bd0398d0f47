package synth

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/teehex/teehex/internal/defs"
	"github.com/teehex/teehex/internal/fsops"
	"github.com/teehex/teehex/pkg/models"
)

// Toolchain versions pinned in every generated root manifest.
const (
	packageManager      = "pnpm@9.15.0"
	typesNodeVersion    = "^22.10.5"
	vercelNodeVersion   = "^5.0.0"
	concurrentlyVersion = "^9.1.2"
	tsxVersion          = "^4.19.2"
	typescriptVersion   = "^5.7.2"
	vercelRuntime       = "@vercel/node@5.0.0"
)

// RootManifest returns the root package.json.
func RootManifest(opts models.OptionSet) ([]byte, error) {
	scripts := fsops.NewObject().
		Set("dev", `concurrently -k -n api,web "pnpm:dev:api" "pnpm:dev:web"`).
		Set("dev:api", "tsx watch src/dev/dev-api.ts").
		Set("dev:web", "pnpm --filter web dev").
		Set("build", "pnpm build:api && pnpm build:web").
		Set("build:api", "tsc -p tsconfig.json").
		Set("build:web", "pnpm --filter web build").
		Set("typecheck", "tsc -p tsconfig.json")

	devDeps := fsops.NewObject().
		Set("@types/node", typesNodeVersion).
		Set("@vercel/node", vercelNodeVersion).
		Set("concurrently", concurrentlyVersion).
		Set("tsx", tsxVersion).
		Set("typescript", typescriptVersion)

	manifest := fsops.NewObject().
		Set("name", opts.ProjectName).
		Set("version", "0.1.0").
		Set("private", true).
		Set("type", "module").
		Set("packageManager", packageManager).
		Set("workspaces", []any{defs.FrontendDir}).
		Set("scripts", scripts).
		Set("devDependencies", devDeps)

	return encode(defs.PackageJSON, manifest)
}

// CompilerConfig returns the root tsconfig.json covering api/ and src/.
func CompilerConfig(models.OptionSet) ([]byte, error) {
	options := fsops.NewObject().
		Set("target", "ES2022").
		Set("lib", []any{"ES2022"}).
		Set("module", "ESNext").
		Set("moduleResolution", "Bundler").
		Set("types", []any{"node"}).
		Set("strict", true).
		Set("noEmit", true).
		Set("esModuleInterop", true).
		Set("skipLibCheck", true).
		Set("forceConsistentCasingInFileNames", true)

	cfg := fsops.NewObject().
		Set("compilerOptions", options).
		Set("include", []any{defs.APIDir, defs.SourceDir})

	return encode(defs.TSConfigJSON, cfg)
}

// DeploymentConfig returns vercel.json with the API passthrough rewrite,
// the SPA fallback, and the runtime declaration for every API function.
func DeploymentConfig(opts models.OptionSet) ([]byte, error) {
	maxDuration := 10
	if opts.WorkersEnabled {
		maxDuration = 30
	}

	functions := fsops.NewObject().
		Set("api/**/*.ts", fsops.NewObject().
			Set("runtime", vercelRuntime).
			Set("maxDuration", maxDuration))

	rewrites := []any{
		fsops.NewObject().Set("source", "/api/(.*)").Set("destination", "/api/$1"),
		fsops.NewObject().Set("source", "/(.*)").Set("destination", "/index.html"),
	}

	cfg := fsops.NewObject().
		Set("$schema", "https://openapi.vercel.sh/vercel.json").
		Set("buildCommand", "pnpm build").
		Set("outputDirectory", defs.FrontendDir+"/dist").
		Set("functions", functions).
		Set("rewrites", rewrites)

	return encode(defs.VercelJSON, cfg)
}

type workspaceFile struct {
	Packages []string `yaml:"packages"`
}

// WorkspaceFile returns pnpm-workspace.yaml listing the frontend as the
// only member.
func WorkspaceFile(models.OptionSet) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(workspaceFile{Packages: []string{defs.FrontendDir}}); err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", defs.WorkspaceYAML, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", defs.WorkspaceYAML, err)
	}
	return buf.Bytes(), nil
}

func encode(name string, obj *fsops.Object) ([]byte, error) {
	out, err := fsops.EncodeJSON(obj)
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", name, err)
	}
	return out, nil
}
