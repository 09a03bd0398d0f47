package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/teehex/teehex/internal/fsops"
	"github.com/teehex/teehex/internal/template"
)

const (
	// proxyAnchor is the text the proxy block is inserted after.
	proxyAnchor = "defineConfig({"
	// proxyMarker marks a config that already routes /api.
	proxyMarker = `"/api"`
	// DevAPIPort is the port of the local API server started by "pnpm dev".
	DevAPIPort = 3000
)

var proxyBlock = fmt.Sprintf(`
  server: {
    proxy: {
      %s: "http://localhost:%d"
    }
  },`, proxyMarker, DevAPIPort)

// PatchDevProxy inserts a dev-server proxy rule for /api into the Vite
// config at configPath. It reports whether the file changed. A missing
// file, a config that already mentions "/api", and a config without the
// defineConfig({ anchor are left alone.
func PatchDevProxy(configPath string) (bool, error) {
	content, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read dev config: %w", err)
	}

	if bytes.Contains(content, []byte(proxyMarker)) {
		return false, nil
	}

	idx := bytes.Index(content, []byte(proxyAnchor))
	if idx < 0 {
		return false, nil
	}
	at := idx + len(proxyAnchor)

	patched := make([]byte, 0, len(content)+len(proxyBlock))
	patched = append(patched, content[:at]...)
	patched = append(patched, proxyBlock...)
	patched = append(patched, content[at:]...)

	if err := fsops.WriteFile(configPath, patched); err != nil {
		return false, err
	}
	return true, nil
}

// entryCandidates are the conventional frontend entry modules, in search order.
var entryCandidates = []string{"src/main.tsx", "src/main.ts", "src/main.jsx", "src/index.tsx"}

const defaultStylesheet = "./styles.css"

// RewriteStylesheetImport points the first existing entry module under
// frontendDir at ./<stylesheet> instead of ./styles.css. Only the first
// existing candidate is considered and only its first reference changes.
// It returns the candidate inspected ("" when none exists) and whether it
// was rewritten.
func RewriteStylesheetImport(frontendDir, stylesheet string) (string, bool, error) {
	if stylesheet == "" {
		return "", false, nil
	}

	for _, candidate := range entryCandidates {
		p := filepath.Join(frontendDir, filepath.FromSlash(candidate))
		content, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return candidate, false, fmt.Errorf("read entry module: %w", err)
		}

		for _, quote := range []string{`"`, `'`} {
			old := quote + defaultStylesheet + quote
			if !bytes.Contains(content, []byte(old)) {
				continue
			}
			updated := bytes.Replace(content, []byte(old), []byte(quote+"./"+stylesheet+quote), 1)
			if err := fsops.WriteFile(p, updated); err != nil {
				return candidate, false, err
			}
			return candidate, true, nil
		}
		return candidate, false, nil
	}
	return "", false, nil
}

// importSpecifier matches relative module specifiers in import, export
// and dynamic import statements.
var importSpecifier = regexp.MustCompile(`(\bfrom\s*|\bimport\s*\(\s*|\bimport\s+)(["'])(\.\.?/[^"'\n]*)(["'])`)

// ImportRewriter returns a transform for a file being moved from its
// fragment folder into targetDir (slash-separated, project relative).
// Relative specifiers that point into the base fragment are rewritten to
// the matching project path; specifiers inside the file's own fragment
// folder keep their position relative to the file. Package imports are
// untouched. Any other relative specifier fails with ErrUnresolvableImport.
func ImportRewriter(targetDir string) fsops.Transform {
	return func(content []byte, srcPath string) ([]byte, error) {
		srcDir := path.Dir(srcPath)
		var firstErr error
		out := importSpecifier.ReplaceAllFunc(content, func(m []byte) []byte {
			sub := importSpecifier.FindSubmatch(m)
			spec, err := rewriteSpecifier(string(sub[3]), srcDir, targetDir)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", srcPath, err)
				}
				return m
			}
			return []byte(string(sub[1]) + string(sub[2]) + spec + string(sub[4]))
		})
		if firstErr != nil {
			return nil, firstErr
		}
		return out, nil
	}
}

func rewriteSpecifier(spec, srcDir, targetDir string) (string, error) {
	resolved := path.Join(srcDir, spec)

	var projectPath string
	switch {
	case resolved == srcDir || strings.HasPrefix(resolved, srcDir+"/"):
		projectPath = path.Join(targetDir, strings.TrimPrefix(resolved, srcDir))
	case strings.HasPrefix(resolved, template.BaseFragment+"/"):
		projectPath = strings.TrimPrefix(resolved, template.BaseFragment+"/")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnresolvableImport, spec)
	}

	rel, err := filepath.Rel(filepath.FromSlash(targetDir), filepath.FromSlash(projectPath))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnresolvableImport, spec, err)
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == "." || rel == "..":
		rel += "/"
	case !strings.HasPrefix(rel, "../"):
		rel = "./" + rel
	}
	if strings.HasSuffix(spec, "/") && !strings.HasSuffix(rel, "/") {
		rel += "/"
	}
	return rel, nil
}
