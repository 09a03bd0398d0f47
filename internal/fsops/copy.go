package fsops

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/teehex/teehex/internal/defs"
)

// Transform rewrites the content of a text file. srcPath is the
// slash-separated path of the file inside its source filesystem.
type Transform func(content []byte, srcPath string) ([]byte, error)

// CopyTree copies every file under srcDir in src into target, creating
// directories on demand. Text files pass through transform when it is
// non-nil; binary files are copied verbatim. The walk is depth-first and
// sequential. The first read or write failure aborts the copy.
//
// The returned paths are slash-separated and relative to target.
func CopyTree(src fs.FS, srcDir, target string, transform Transform) ([]string, error) {
	srcDir = path.Clean(srcDir)
	target = filepath.Clean(target)

	var written []string
	err := fs.WalkDir(src, srcDir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := relativeTo(srcDir, p)
		if rel == "." {
			return os.MkdirAll(target, defs.DirPerm)
		}

		destPath, err := SafeJoin(target, rel)
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if err := os.MkdirAll(destPath, defs.DirPerm); err != nil {
				return fmt.Errorf("copy tree mkdir %q: %w", destPath, err)
			}
			return nil
		}

		if err := CopyFile(src, p, destPath, transform); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy %s: %w", srcDir, err)
	}
	return written, nil
}

// CopyFile copies one file from src to the OS path destPath, applying
// transform to text files.
func CopyFile(src fs.FS, srcPath, destPath string, transform Transform) error {
	content, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("copy read %q: %w", srcPath, err)
	}

	if transform != nil && IsTextFile(srcPath) {
		content, err = transform(content, srcPath)
		if err != nil {
			return fmt.Errorf("copy transform %q: %w", srcPath, err)
		}
	}

	return WriteFile(destPath, content)
}

// WriteFile writes content to destPath, creating parent directories.
func WriteFile(destPath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %q: %w", filepath.Dir(destPath), err)
	}

	perm := defs.FilePerm
	if strings.HasSuffix(destPath, ".sh") {
		perm = 0o755
	}
	if err := os.WriteFile(destPath, content, perm); err != nil {
		return fmt.Errorf("write %q: %w", destPath, err)
	}
	return nil
}

// SafeJoin joins a slash-separated relative path onto root and rejects
// absolute paths and parent references that would leave root.
func SafeJoin(root, rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))

	if filepath.IsAbs(cleaned) || strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, rel)
	}

	return filepath.Join(root, cleaned), nil
}

// relativeTo returns p relative to dir for slash-separated fs paths.
func relativeTo(dir, p string) string {
	if dir == "." {
		return p
	}
	if p == dir {
		return "."
	}
	return strings.TrimPrefix(p, dir+"/")
}
