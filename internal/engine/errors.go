package engine

import "errors"

// Error kinds returned by the lifecycle engines. Callers classify with
// errors.Is; the API layer maps each kind to a stable status code.
var (
	// ErrUnauthorized means the actor's role or ownership check failed.
	ErrUnauthorized = errors.New("not authorized")

	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition means the requested move is not in the legal
	// set for the record's current state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrConflict means the transition lost a concurrent race; the state
	// was already changed by another actor.
	ErrConflict = errors.New("conflict")

	// ErrNoOp means the target state already holds.
	ErrNoOp = errors.New("already in requested state")

	// ErrValidation means an input field is missing or malformed.
	ErrValidation = errors.New("invalid input")
)
