package utils

import "errors"

// Sentinel errors shared by the calculator helpers. Callers test with
// errors.Is and map them to 400 / empty-state responses respectively.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientData = errors.New("insufficient data")
)
