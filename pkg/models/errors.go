package models

import "errors"

// Sentinel errors for option parsing and validation.
var (
	// ErrUnknownOption indicates a value outside an option enumeration.
	ErrUnknownOption = errors.New("unknown option value")

	// ErrInvalidProjectName indicates a project name that normalizes to nothing.
	ErrInvalidProjectName = errors.New("invalid project name")
)
