package console

import (
	"strconv"
	"strings"
)

// --- Input Validation ---

func parseAccountNo(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, newInputError("Account number should be in numeric form.")
	}
	if n <= 0 {
		return 0, newInputError("Account number should be a positive number.")
	}
	return n, nil
}

func parseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, newInputError("Amount should be in numeric form.")
	}
	if n <= 0 {
		return 0, newInputError("Amount should be a positive number.")
	}
	return n, nil
}

func validatePassword(s string) (string, error) {
	if s == "" {
		return "", newInputError("Password should not be empty.")
	}
	return s, nil
}
