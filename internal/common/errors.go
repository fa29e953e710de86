// Package common defines sentinel errors and constants shared by the client
// packages. Callers match the errors with errors.Is.
package common

import "errors"

var (
	// ErrAuth is returned when a login response carries no token.
	ErrAuth = errors.New("authentication failed: no token received")

	// ErrPermission reports an action on a resource owned by another user.
	// It is detected locally and no request is sent.
	ErrPermission = errors.New("permission denied: resource belongs to another user")

	// ErrValidation reports input rejected before any request is sent.
	ErrValidation = errors.New("validation error")

	// ErrNotFound reports an identifier unknown to the local state.
	ErrNotFound = errors.New("not found")

	// ErrCancelled is returned when the user declines a confirmation.
	ErrCancelled = errors.New("cancelled")

	// ErrUpload reports a failed file upload after its post was saved.
	ErrUpload = errors.New("file upload failed")

	// ErrNotLoggedIn is returned by operations that need a session user.
	ErrNotLoggedIn = errors.New("not logged in")
)
