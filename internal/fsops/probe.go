package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Exists reports whether path exists. Any stat error other than
// not-exist counts as existing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// RemoveIfExists removes path and everything below it. An absent path is
// not an error.
func RemoveIfExists(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %q: %w", path, err)
	}
	return nil
}

// IsDirEmptyOrMissing reports whether path is absent or an empty
// directory. A path that exists as a regular file is reported as not empty.
func IsDirEmptyOrMissing(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read dir %q: %w", path, err)
	}
	return false, nil
}
