package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed all:library
var embeddedLibrary embed.FS

// Fragment roots inside a template library.
const (
	BaseFragment   = "base"
	CoreFragment   = "base/src/core"
	OverlaysRoot   = "overlays"
	DBAdaptersRoot = "adapters/db"
	overlayVariant = "vite"
	frontendPrefix = "frontend-"
	backendPrefix  = "backend-"
)

// Library is a read-only tree of template fragments.
type Library struct {
	fsys   fs.FS
	origin string
}

// TemplateInfo describes one fragment for help output.
type TemplateInfo struct {
	ID          string
	Description string
}

// Embedded returns the library compiled into the binary.
func Embedded() *Library {
	sub, err := fs.Sub(embeddedLibrary, "library")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(fmt.Sprintf("embedded template library: %v", err))
	}
	return &Library{fsys: sub, origin: "embedded"}
}

// FromDir opens an on-disk library rooted at dir.
func FromDir(dir string) (*Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve template dir %q: %w", dir, err)
	}
	return FromFS(os.DirFS(abs), abs)
}

// FromFS wraps fsys as a Library after checking it holds the base fragment.
func FromFS(fsys fs.FS, origin string) (*Library, error) {
	lib := &Library{fsys: fsys, origin: origin}
	if !lib.IsDir(BaseFragment) {
		return nil, fmt.Errorf("%w: %s has no %s/ directory", ErrLibraryNotFound, origin, BaseFragment)
	}
	return lib, nil
}

// FS returns the underlying filesystem.
func (l *Library) FS() fs.FS { return l.fsys }

// Origin returns "embedded" or the absolute directory the library was loaded from.
func (l *Library) Origin() string { return l.origin }

// Exists reports whether p (slash-separated, library-relative) exists.
func (l *Library) Exists(p string) bool {
	_, err := fs.Stat(l.fsys, p)
	return err == nil
}

// IsDir reports whether p is a directory in the library.
func (l *Library) IsDir(p string) bool {
	info, err := fs.Stat(l.fsys, p)
	return err == nil && info.IsDir()
}

var templateDescriptions = map[string]string{
	"base":            "Canonical hexagonal core skeleton with Todo bounded context",
	"backend-vercel":  "Vercel serverless functions with a local Node dev server",
	"frontend-react":  "React 19 single-page app on Vite",
	"frontend-vue":    "Vue 3 single-page app on Vite",
	"frontend-svelte": "Svelte 5 single-page app on Vite",
	"frontend-solid":  "SolidJS single-page app on Vite",
	"frontend-preact": "Preact single-page app on Vite",
}

// Templates lists the top-level fragment ids of the library in name order,
// followed by overlay and db adapter fragments.
func (l *Library) Templates() ([]TemplateInfo, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read template library: %w", err)
	}

	var infos []TemplateInfo
	for _, e := range entries {
		if !e.IsDir() || e.Name() == OverlaysRoot || e.Name() == "adapters" {
			continue
		}
		infos = append(infos, TemplateInfo{ID: e.Name(), Description: templateDescriptions[e.Name()]})
	}

	overlays, err := l.subdirs(OverlaysRoot)
	if err != nil {
		return nil, err
	}
	for _, name := range overlays {
		infos = append(infos, TemplateInfo{
			ID:          path.Join(OverlaysRoot, name),
			Description: "Styling overlay for Vite frontends",
		})
	}

	adapters, err := l.subdirs(DBAdaptersRoot)
	if err != nil {
		return nil, err
	}
	for _, name := range adapters {
		infos = append(infos, TemplateInfo{
			ID:          path.Join(DBAdaptersRoot, name),
			Description: "TodoRepo persistence adapter",
		})
	}

	return infos, nil
}

func (l *Library) subdirs(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
