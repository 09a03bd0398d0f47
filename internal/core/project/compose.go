package project

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/teehex/teehex/internal/defs"
	"github.com/teehex/teehex/internal/fsops"
	"github.com/teehex/teehex/internal/synth"
	"github.com/teehex/teehex/internal/template"
)

// copyBackend copies the backend fragment's api/ and src/ subtrees into
// the project root.
func copyBackend(_ context.Context, r *run) error {
	folder := template.BackendFolder(r.opts.Backend)
	for _, sub := range []string{defs.APIDir, defs.SourceDir} {
		if _, err := fsops.CopyTree(r.lib.FS(), path.Join(folder, sub), r.path(sub), nil); err != nil {
			return err
		}
	}
	return nil
}

func copyCore(_ context.Context, r *run) error {
	_, err := fsops.CopyTree(r.lib.FS(), template.CoreFragment, r.path(defs.CoreDir), nil)
	return err
}

func copyFrontend(_ context.Context, r *run) error {
	_, err := fsops.CopyTree(r.lib.FS(), template.FrontendFolder(r.opts.Frontend), r.path(defs.FrontendDir), nil)
	return err
}

func patchProxy(_ context.Context, r *run) error {
	patched, err := PatchDevProxy(r.path(defs.ViteConfigTS))
	if err != nil {
		return err
	}
	r.logger.Debug("dev-server proxy", "file", defs.ViteConfigTS, "patched", patched)
	return nil
}

func writeConfig(_ context.Context, r *run) error {
	files, err := synth.RootFiles(r.opts)
	if err != nil {
		return err
	}
	return writeFiles(r, files)
}

func writeWiring(_ context.Context, r *run) error {
	files, err := synth.WiringFiles(r.opts)
	if err != nil {
		return err
	}
	return writeFiles(r, files)
}

func writeFiles(r *run, files []synth.File) error {
	for _, f := range files {
		if err := fsops.WriteFile(r.path(f.Path), f.Content); err != nil {
			return err
		}
	}
	return nil
}

// applyOverlay runs the overlay manifest and points the frontend entry
// module at the overlay stylesheet.
func applyOverlay(_ context.Context, r *run) error {
	m, err := r.lib.LoadOverlayManifest(r.opts.Overlay)
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}

	for _, op := range m.Copy {
		dest, err := fsops.SafeJoin(r.root, op.To)
		if err != nil {
			return err
		}
		if err := fsops.CopyFile(r.lib.FS(), m.SourcePath(op), dest, nil); err != nil {
			return err
		}
	}

	for _, op := range m.Merge {
		dest, err := fsops.SafeJoin(r.root, op.To)
		if err != nil {
			return err
		}
		if err := fsops.MergeJSONFileFrom(dest, r.lib.FS(), m.SourcePath(op)); err != nil {
			return err
		}
	}

	entry, rewritten, err := RewriteStylesheetImport(r.path(defs.FrontendDir), template.OverlayStylesheet(r.opts.Overlay))
	if err != nil {
		return err
	}
	r.logger.Debug("overlay stylesheet", "entry", entry, "rewritten", rewritten)
	return nil
}

// Adapter companion files copied next to todo-repo.ts when the fragment has them.
var adapterCompanions = []string{defs.AdapterSchemaSQL, defs.AdapterInitTS, defs.AdapterReadmeMD}

// installAdapter replaces the placeholder persistence directory with the
// adapter of the selected db family.
func installAdapter(_ context.Context, r *run) error {
	db := template.ResolveDB(r.opts.DB)
	dir := r.path(defs.PersistenceDir)

	if err := fsops.RemoveIfExists(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %q: %w", dir, err)
	}

	rewrite := ImportRewriter(defs.PersistenceDir)
	if err := fsops.CopyFile(r.lib.FS(), db.AdapterPath(), r.path(path.Join(defs.PersistenceDir, defs.TodoRepoTS)), rewrite); err != nil {
		return err
	}

	for _, name := range adapterCompanions {
		src := path.Join(db.AdapterFolder, name)
		if !r.lib.Exists(src) {
			continue
		}
		if err := fsops.CopyFile(r.lib.FS(), src, r.path(path.Join(defs.PersistenceDir, name)), rewrite); err != nil {
			return err
		}
	}

	additions := path.Join(db.AdapterFolder, defs.AdapterPackageJSON)
	if r.lib.Exists(additions) {
		if err := fsops.MergeJSONFileFrom(r.path(defs.PackageJSON), r.lib.FS(), additions); err != nil {
			return err
		}
	}

	r.logger.Debug("persistence adapter installed", "family", db.Family, "provider", db.Provider)
	return nil
}

// prune removes worker-only files when workers are disabled.
func prune(_ context.Context, r *run) error {
	if r.opts.WorkersEnabled {
		return nil
	}
	for _, rel := range []string{defs.WorkerRouteTS, defs.WorkerAdapterDir} {
		p := r.path(rel)
		if !fsops.Exists(p) {
			continue
		}
		if err := fsops.RemoveIfExists(p); err != nil {
			return err
		}
		r.logger.Debug("pruned worker file", "path", rel)
	}
	return nil
}
