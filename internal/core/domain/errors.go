package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Login with an unknown email also reports this error.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates an employee email is already taken.
	// Emails are compared case-insensitively.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrIllegalTransition indicates a status change outside the
	// record's transition table, such as re-approving a rejected leave.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrPersistenceUnavailable indicates the key-value store could not be
	// read or written. The in-memory state remains authoritative.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrForbidden indicates the acting user's role or ownership does not
	// permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotAuthenticated indicates an operation needs a logged-in user.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Assistant features fall back to fixed messages without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
