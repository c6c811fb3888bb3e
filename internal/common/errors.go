package common

import "errors"

// Sentinel errors shared by the gateway, the forms and the screen sessions.
// Callers match them with errors.Is; the CLI turns each into a user message.
var (
	// ErrValidation marks a client-side precondition failure. It is raised
	// before any network call is made.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when the weather service does not know a city.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned when the auth service rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable covers transport failures, timeouts and any unexpected
	// upstream status.
	ErrUnavailable = errors.New("service unavailable")
)
