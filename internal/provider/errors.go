package provider

import "errors"

// Error taxonomy shared by every provider variant and the engine. Callers
// match with errors.Is; messages are meant to be user-facing as-is.
var (
	// ErrNotFound marks a document, tier, or item referenced by an id that
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks a malformed mutation request.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCapacityExceeded marks a write that would exceed the configured
	// store capacity. The previously stored state is left unchanged.
	ErrCapacityExceeded = errors.New("storage capacity exceeded")
	// ErrUnavailable marks a backing medium that cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrImport marks a malformed or schema-invalid import payload.
	ErrImport = errors.New("import failed")
	// ErrNotInitialized marks factory use before Initialize.
	ErrNotInitialized = errors.New("persistence provider not initialized")
	// ErrNotImplemented marks an unsupported provider variant.
	ErrNotImplemented = errors.New("provider variant not implemented")
)
