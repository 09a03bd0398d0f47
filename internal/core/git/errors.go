// Package git initializes a version control repository in a freshly
// generated project. Every failure is reported as a warning outcome
// instead of an error.
package git

import "errors"

// ErrSystemGitNotFound indicates the git executable is not on PATH.
var ErrSystemGitNotFound = errors.New("system git not found")
