package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Merge returns a new Object holding base deep-merged with additions.
// Neither input is modified.
//
// When a key exists on both sides and both values are objects, they are
// merged recursively. In every other case (arrays, scalars, kind
// mismatches) the addition replaces the base value. Keys keep the order of
// base; keys only present in additions are appended in their order.
func Merge(base, additions *Object) *Object {
	out := base.Clone()
	if additions == nil {
		return out
	}

	for _, k := range additions.keys {
		add := additions.values[k]
		if cur, ok := out.values[k]; ok {
			curObj, curIsObj := cur.(*Object)
			addObj, addIsObj := add.(*Object)
			if curIsObj && addIsObj {
				out.Set(k, Merge(curObj, addObj))
				continue
			}
		}
		out.Set(k, cloneValue(add))
	}
	return out
}

// MergeJSONFile deep-merges the JSON object in additions into the file at
// targetPath and rewrites it as indented JSON. An absent target is treated
// as an empty object.
func MergeJSONFile(targetPath string, additions []byte) error {
	addObj, err := ParseObject(additions)
	if err != nil {
		return fmt.Errorf("merge %q: additions: %w", targetPath, err)
	}

	baseObj := NewObject()
	existing, err := os.ReadFile(targetPath)
	switch {
	case err == nil:
		baseObj, err = ParseObject(existing)
		if err != nil {
			return fmt.Errorf("merge %q: %w", targetPath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("merge read %q: %w", targetPath, err)
	}

	content, err := EncodeJSON(Merge(baseObj, addObj))
	if err != nil {
		return fmt.Errorf("merge %q: %w", targetPath, err)
	}
	return WriteFile(targetPath, content)
}

// MergeJSONFileFrom reads the additions document from src and merges it
// into targetPath.
func MergeJSONFileFrom(targetPath string, src fs.FS, srcPath string) error {
	additions, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("merge read %q: %w", srcPath, err)
	}
	return MergeJSONFile(targetPath, additions)
}
