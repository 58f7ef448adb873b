package ascii85

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput classifies every input rejected by Decode. Use errors.Is to test for it; the more
// specific errors below all wrap it.
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrInvalidCharacter is returned for characters outside of '!'...'u' other than 'z'.
	ErrInvalidCharacter = errors.WithMessage(ErrInvalidInput, "invalid character")

	// ErrGroupOverflow is returned when five characters decode to a value larger than 32 bits.
	ErrGroupOverflow = errors.WithMessage(ErrInvalidInput, "group overflow")

	// ErrTruncatedGroup is returned when the input ends with a single character, which cannot carry a byte.
	ErrTruncatedGroup = errors.WithMessage(ErrInvalidInput, "truncated group")
)
