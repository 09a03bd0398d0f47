package template

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/teehex/teehex/internal/defs"
	"github.com/teehex/teehex/internal/fsops"
	"github.com/teehex/teehex/pkg/models"
)

// OverlayOp is one manifest entry. From is relative to the overlay
// fragment folder; To is relative to the generated project root.
type OverlayOp struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OverlayManifest declares the files an overlay copies verbatim and the
// JSON documents it merges into the project.
type OverlayManifest struct {
	Overlay models.Overlay `json:"-"`
	Folder  string         `json:"-"`
	Copy    []OverlayOp    `json:"copy"`
	Merge   []OverlayOp    `json:"merge"`
}

// SourcePath returns the library path of op's source inside the manifest's fragment.
func (m *OverlayManifest) SourcePath(op OverlayOp) string {
	return path.Join(m.Folder, op.From)
}

// LoadOverlayManifest reads and validates the manifest of o. The none
// overlay yields (nil, nil).
func (l *Library) LoadOverlayManifest(o models.Overlay) (*OverlayManifest, error) {
	folder := OverlayFolder(o)
	if folder == "" {
		return nil, nil
	}

	manifestPath := path.Join(folder, defs.OverlayManifestJSON)
	data, err := fs.ReadFile(l.fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: overlay %s: %v", ErrTemplateNotFound, o, err)
	}

	m := &OverlayManifest{Overlay: o, Folder: folder}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidOverlayManifest, manifestPath, err)
	}
	if err := l.validateManifest(m); err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}
	return m, nil
}

func (l *Library) validateManifest(m *OverlayManifest) error {
	check := func(kind string, ops []OverlayOp) error {
		for i, op := range ops {
			if op.From == "" || op.To == "" {
				return fmt.Errorf("%w: %s[%d] needs both from and to", ErrInvalidOverlayManifest, kind, i)
			}
			if escapes(op.From) {
				return fmt.Errorf("%w: %s[%d].from %q", fsops.ErrPathTraversal, kind, i, op.From)
			}
			if escapes(op.To) {
				return fmt.Errorf("%w: %s[%d].to %q", fsops.ErrPathTraversal, kind, i, op.To)
			}
			src := m.SourcePath(op)
			info, err := fs.Stat(l.fsys, src)
			if err != nil || info.IsDir() {
				return fmt.Errorf("%w: %s[%d].from %q is not a file in the overlay", ErrInvalidOverlayManifest, kind, i, op.From)
			}
		}
		return nil
	}

	if err := check("copy", m.Copy); err != nil {
		return err
	}
	return check("merge", m.Merge)
}

func escapes(p string) bool {
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return true
	}
	cleaned := path.Clean(p)
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}
