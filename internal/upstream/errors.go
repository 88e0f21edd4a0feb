package upstream

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for any upstream 401. Callers treat it as
// an expired session and send the partner back to the login page; it is
// never retried.
var ErrUnauthorized = errors.New("upstream rejected the credential")

// ErrNotFound is returned when the reservation id is unknown upstream.
var ErrNotFound = errors.New("reservation not found")

// ValidationError is an upstream 4xx rejection of the payload itself.
type ValidationError struct {
	Op     string
	Status int
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: upstream rejected payload (HTTP %d)", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Detail, e.Status)
}

// OperationError wraps every other failure (network, 5xx, bad body) and
// names the operation that was attempted so the UI can report it.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
