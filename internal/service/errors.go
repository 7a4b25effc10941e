package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/max9849/webflow-offres-api/internal/webflow"
)

// ValidationError rejects an input before any remote call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError means the requested id or slug does not exist in the
// collection.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("offer %q not found", e.Ref)
}

// RemoteError is a 4xx/5xx verdict from the Webflow API, carried verbatim so
// callers can tell a schema mismatch from an auth problem.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote API rejected the call (%d): %s", e.StatusCode, e.Body)
}

// TransportError is a network failure or timeout reaching the Webflow API.
// The call may never have arrived; clients can retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote API unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// unpublishNoop reports whether an unpublish failure means the live copy was
// already gone (never published, or already removed). Transport failures are
// not no-ops: the call may never have arrived and the live copy may still be
// up.
func unpublishNoop(err error) bool {
	var apiErr *webflow.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusConflict || apiErr.StatusCode == http.StatusNotFound
}

// classify maps a Webflow client error into the service taxonomy. ref names
// the item involved, for not-found messages.
func classify(err error, ref string) error {
	var apiErr *webflow.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return &NotFoundError{Ref: ref}
		}
		return &RemoteError{StatusCode: apiErr.StatusCode, Body: apiErr.Body}
	}
	return &TransportError{Err: err}
}
