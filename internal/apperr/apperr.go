// Package apperr defines the error taxonomy shared by the services.
// Callers classify failures with errors.Is against these sentinels.
package apperr

import "errors"

var (
	// ErrNotFound means a referenced complaint, escalation, user or
	// status does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means the caller supplied unusable input, such as
	// a blank escalation reason.
	ErrInvalidInput = errors.New("invalid input")
)
