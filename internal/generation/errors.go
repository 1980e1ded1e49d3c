// Package generation orchestrates the document-generation pipeline:
// it loads the profile and credentials, decides between the provider
// and template paths, sequences the two completion calls, and owns the
// request state machine.
package generation

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by collaborators when a record does not
// exist. The orchestrator degrades to placeholder data instead of
// aborting.
var ErrNotFound = errors.New("not found")

// ValidationError blocks a request before any network or template
// call. It is surfaced inline to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// CollaboratorError records a failed profile or credential load. It is
// logged, not returned: generation proceeds on degraded data.
type CollaboratorError struct {
	Collaborator string
	Cause        error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator error (%s): %v", e.Collaborator, e.Cause)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}
