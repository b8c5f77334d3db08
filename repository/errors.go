package repository

import "errors"

// Error taxonomy shared by all repositories. Callers branch with errors.Is.
// Infrastructure faults surface separately as store.ErrUnavailable-wrapped
// errors and are never swallowed here.
var (
	// ErrValidation indicates a missing or empty required field.
	ErrValidation = errors.New("missing required field")
	// ErrNotFound indicates the referenced record does not exist in the user's scope.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a duplicate username on creation.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials indicates a password mismatch for an existing user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
