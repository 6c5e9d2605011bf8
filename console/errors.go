package console

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ubank/account"
)

// --- Error Handling ---

// inputError carries the text shown to the user for malformed input.
type inputError struct {
	message string
}

func (e *inputError) Error() string { return e.message }

func (e *inputError) Unwrap() error { return account.ErrInvalidInput }

func newInputError(message string) error {
	return &inputError{message: message}
}

func userMessage(err error) string {
	var ie *inputError
	switch {
	case errors.As(err, &ie):
		return ie.message
	case errors.Is(err, account.ErrInvalidInput):
		return "Invalid input."
	case errors.Is(err, account.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, account.ErrIncorrectPassword):
		return "Incorrect password."
	case errors.Is(err, account.ErrAccountAlreadyRegistered):
		return "Account already registered."
	case errors.Is(err, account.ErrInsufficientBalance):
		return "Insufficient balance."
	default:
		return "Something went wrong, please try again."
	}
}

func (c *Console) respondWithError(prefix string, err error) {
	if !isKnown(err) {
		c.logger.Error("unexpected error", zap.Error(err))
	}
	if prefix == "" {
		fmt.Fprintln(c.out, userMessage(err))
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", prefix, userMessage(err))
}

func isKnown(err error) bool {
	for _, target := range []error{
		account.ErrInvalidInput,
		account.ErrAccountNotFound,
		account.ErrIncorrectPassword,
		account.ErrAccountAlreadyRegistered,
		account.ErrInsufficientBalance,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
