package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingEmail    = errors.New("missing email")
	ErrMissingPassword = errors.New("missing password")
	ErrMissingName     = errors.New("missing name")
	ErrMissingType     = errors.New("missing type")
	ErrMissingData     = errors.New("missing data")

	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")

	// ErrNotFound covers both a record that does not exist and a record the
	// requester may not see. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrFolderHasNoContent = errors.New("a folder doesn't have content")
)
