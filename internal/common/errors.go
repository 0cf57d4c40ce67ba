// Package common defines sentinel errors shared across WealthWise
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (bad input; the user must correct and retry).
	ErrValidation = errors.New("validation error")

	// Account flow errors, surfaced as user-facing messages.
	ErrDuplicateAccount = errors.New("account already exists")
	ErrNotFound         = errors.New("not found")
	ErrAuthentication   = errors.New("invalid credentials")

	// ErrNoSession indicates a conversation operation was invoked with no
	// authenticated user. Normal UI flow never reaches this state.
	ErrNoSession = errors.New("no active session")

	// ErrCorruptCode indicates a transfer code that is not valid encoded
	// data or does not decode to a structurally valid conversation.
	ErrCorruptCode = errors.New("invalid transfer code")

	// Generic internal failure (storage, serialization).
	ErrInternal = errors.New("internal error")
)
