package types

import (
	"errors"
	"fmt"
)

// Root of all recoverable decode failures. The caller may advance and retry.
var ErrDecodeFailure = errors.New("decode failure")

// Root of all fatal codec errors: the instruction producer or the codec
// configuration broke a contract. Never retried.
var ErrInvariantViolation = errors.New("internal invariant violated")

var (
	ErrTruncatedInput  = fmt.Errorf("%w: truncated input", ErrDecodeFailure)
	ErrNoMatch         = fmt.Errorf("%w: no instruction matches", ErrDecodeFailure)
	ErrUnknownRegister = fmt.Errorf("%w: unknown register", ErrDecodeFailure)

	ErrOutOfRange           = fmt.Errorf("%w: operand value out of range", ErrInvariantViolation)
	ErrMisaligned           = fmt.Errorf("%w: misaligned operand value", ErrInvariantViolation)
	ErrNotInTable           = fmt.Errorf("%w: operand value not in constant table", ErrInvariantViolation)
	ErrUnsupportedByteOrder = fmt.Errorf("%w: unsupported byte order", ErrInvariantViolation)
	ErrFeatureDisabled      = fmt.Errorf("%w: required feature disabled", ErrInvariantViolation)
	ErrOperandShape         = fmt.Errorf("%w: operand does not fit instruction slot", ErrInvariantViolation)
	ErrWrongRegisterClass   = fmt.Errorf("%w: wrong register class", ErrInvariantViolation)
)

// Returns true if err is a fatal codec error
func IsFatal(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

// Returns true if err is a recoverable decode failure
func IsDecodeFailure(err error) bool {
	return errors.Is(err, ErrDecodeFailure)
}
