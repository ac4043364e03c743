package model

import "errors"

// Category errors for the planner's operations. Services wrap these with
// context via fmt.Errorf; callers branch with errors.Is.
var (
	// ErrValidation marks bad or missing required input
	ErrValidation = errors.New("validation error")

	// ErrConflict marks an operation not permitted in the current state,
	// such as mutating a finalized raid or adding a duplicate encounter
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a referenced entity that does not exist
	ErrNotFound = errors.New("not found")
)
