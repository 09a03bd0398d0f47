// Package project composes a new application directory from template
// fragments. Generation runs a fixed sequence of steps; every step before
// VCS initialization is fatal on failure and nothing is rolled back.
package project

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetNotEmpty indicates the target directory already holds entries.
	ErrTargetNotEmpty = errors.New("target directory not empty")

	// ErrUnresolvableImport indicates a relative import in an adapter that
	// points neither into its own folder nor into the base fragment.
	ErrUnresolvableImport = errors.New("unresolvable relative import")
)

// StepError wraps the failure of one generation step.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
