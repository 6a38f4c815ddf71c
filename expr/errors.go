package expr

import "errors"

var (
	// ErrNegativeLength is returned when an array length is below zero.
	ErrNegativeLength = errors.New("expr: negative length")

	// ErrTooLarge is returned when an allocation would overflow or exceed
	// the configured element limit.
	ErrTooLarge = errors.New("expr: array too large")

	// ErrMisaligned is returned by Wrap for storage that is not aligned to
	// the vector model.
	ErrMisaligned = errors.New("expr: storage not aligned for vector model")

	// ErrUnknownBackend is returned when a forced backend is not registered.
	ErrUnknownBackend = errors.New("expr: unknown backend")

	// ErrNoBackend is returned when no registered backend suits the CPU.
	ErrNoBackend = errors.New("expr: no backend registered")

	// ErrInvalidUnroll is returned for a negative unroll factor.
	ErrInvalidUnroll = errors.New("expr: invalid unroll factor")

	// ErrLengthMismatch is returned by Validate when an operand or a
	// destination is shorter than the execution length.
	ErrLengthMismatch = errors.New("expr: operand shorter than execution length")
)
