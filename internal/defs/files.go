package defs

import "os"

// Permissions used for generated files and directories.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Top-level directories of a generated project.
const (
	APIDir      = "api"
	SourceDir   = "src"
	FrontendDir = "web"
)

// Root files synthesized for every generated project.
const (
	PackageJSON   = "package.json"
	TSConfigJSON  = "tsconfig.json"
	VercelJSON    = "vercel.json"
	WorkspaceYAML = "pnpm-workspace.yaml"
	EnvExample    = ".env.example"
	GitIgnore     = ".gitignore"
	ReadmeMD      = "README.md"
)

// Paths inside a generated project, slash-separated and relative to its root.
const (
	CoreDir          = "src/core"
	PersistenceDir   = "src/adapters/persistence"
	WorkerAdapterDir = "src/adapters/worker_threads"
	ContainerTS      = "src/bootstrap/container.ts"
	DevRoutesTS      = "src/dev/routes.ts"
	WorkerRouteTS    = "api/heavy.ts"
	ViteConfigTS     = "web/vite.config.ts"

	// TodoRepoTS is the canonical name of the installed persistence adapter.
	TodoRepoTS = "todo-repo.ts"
)

// Well-known file names inside template fragments.
const (
	OverlayManifestJSON = "overlay.json"
	AdapterSchemaSQL    = "init.sql"
	AdapterInitTS       = "init.ts"
	AdapterReadmeMD     = "README.md"
	AdapterPackageJSON  = "package.json"
)
