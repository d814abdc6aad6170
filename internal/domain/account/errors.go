package account

import (
	"errors"
	"fmt"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrNameRequired  = errors.New("name is required for new accounts")

	// ErrEmailTaken is reported by the directory when account creation
	// collides with an existing email in any lifecycle state.
	ErrEmailTaken = errors.New("email already taken")

	// ErrAlreadyInGroup is a deterministic conflict: the account is active
	// and already holds the requested membership. Callers should treat it
	// as a no-op conflict, not a system failure.
	ErrAlreadyInGroup = errors.New("user already in group")

	// ErrUnreconciled means creation failed as taken but no matching user
	// was found in any status. It signals an invariant violation and is
	// never silently converted into a success.
	ErrUnreconciled = errors.New("user state could not be reconciled")

	// ErrInvalidCredentials is a fatal login failure against Redash.
	ErrInvalidCredentials = errors.New("invalid redash credentials")

	ErrActiveUserNotFound   = errors.New("active user not found")
	ErrDisabledUserNotFound = errors.New("disabled user not found")
	ErrPendingUserNotFound  = errors.New("pending user not found")
)

// UpstreamError wraps a network or HTTP failure from the Redash API. Retry
// policy belongs to the calling orchestrator, not to this connector.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("redash %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("redash %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
