// Package fsops implements the file transform primitives used to compose a
// project from template fragments: tree copies with optional text
// transforms, order-preserving JSON deep merges, and existence probes.
package fsops

import "errors"

// Sentinel errors for the fsops package.
var (
	// ErrNotJSONObject indicates a JSON document whose top-level value is not an object.
	ErrNotJSONObject = errors.New("json document is not an object")

	// ErrPathTraversal indicates a relative path that escapes its root.
	ErrPathTraversal = errors.New("path escapes target root")
)
