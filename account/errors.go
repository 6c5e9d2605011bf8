package account

import "errors"

// --- Errors ---

var (
	ErrAccountNotFound          = errors.New("account not found")
	ErrIncorrectPassword        = errors.New("incorrect password")
	ErrAccountAlreadyRegistered = errors.New("account already registered")
	ErrInsufficientBalance      = errors.New("insufficient balance")

	// ErrInvalidInput marks malformed caller input, never a business rule.
	ErrInvalidInput = errors.New("invalid input")
)
