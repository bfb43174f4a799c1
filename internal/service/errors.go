package service

import "errors"

// Domain failure kinds. These are expected outcomes surfaced to the caller
// with a specific status; anything else is collapsed to a generic server
// error at the HTTP boundary.
var (
	// ErrRegistrationFailed covers every registration persistence failure,
	// duplicate email included. Underlying causes are deliberately not
	// distinguished to the caller.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrInvalidCredentials is returned both for an unknown email and a wrong
	// password, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmployeeNotFound is a repository-level miss on employee lookup.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNotAuthorized means the employee's grade is not in the location's
	// allowed set, or the location has no permission row at all.
	ErrNotAuthorized = errors.New("employee not authorized at this location")

	ErrLocationNotFound = errors.New("location not found")

	// ErrOutOfRange means the supplied coordinates are outside the geofence
	// radius around the location.
	ErrOutOfRange = errors.New("out of range")

	// ErrCheckinLimitExceeded means the employee already has the maximum
	// number of check-ins inside the sliding window.
	ErrCheckinLimitExceeded = errors.New("check-in limit exceeded")
)
