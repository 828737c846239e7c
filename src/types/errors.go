package types

import "github.com/pkg/errors"

// ValidationError marks a failure caused by bad CLI input: unrecognized flag,
// wrong arity, malformed hex, B <= 6, N == 0. It is always reported on stderr
// with a non-zero exit.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError wraps a message as a ValidationError.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{msg: errors.Errorf(format, args...).Error()}
}

// InvariantError marks an algorithmic-invariant violation: a negative or
// zero parameter reaching gcd, ModInverse, Jacobi, IsProbablePrime, or
// GeneratePrime. This is unreachable from a correct composition of the
// core; if it is ever triggered it is treated as fatal.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return e.msg }

// NewInvariantError wraps a message as an InvariantError.
func NewInvariantError(format string, args ...interface{}) error {
	return &InvariantError{msg: errors.Errorf(format, args...).Error()}
}

// FactorizationError marks the specific fatal condition of 20 consecutive
// Pollard's-Rho failures during a break operation.
type FactorizationError struct {
	msg string
}

func (e *FactorizationError) Error() string { return e.msg }

// NewFactorizationError wraps a message as a FactorizationError.
func NewFactorizationError(format string, args ...interface{}) error {
	return &FactorizationError{msg: errors.Errorf(format, args...).Error()}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsInvariant reports whether err is (or wraps) an InvariantError.
func IsInvariant(err error) bool {
	var v *InvariantError
	return errors.As(err, &v)
}

// IsFactorization reports whether err is (or wraps) a FactorizationError.
func IsFactorization(err error) bool {
	var v *FactorizationError
	return errors.As(err, &v)
}
