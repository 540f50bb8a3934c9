package common

import "errors"

// Business logic errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSession    = errors.New("no session")
)
