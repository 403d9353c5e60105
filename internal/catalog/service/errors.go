package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for any login failure, whether the
	// username is unknown or the password is wrong. Callers must not be able
	// to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrNotFound is returned when a lookup or mutation matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrNoPreferences is returned when a recommendation request carries no
	// usable preference terms.
	ErrNoPreferences = errors.New("no preferences given")
)

// DependencyError wraps a failure from the external notes service. The
// upstream error text is preserved so the transport layer can surface it.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("notes service %s failed: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
