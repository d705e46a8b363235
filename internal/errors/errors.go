// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidMove indicates a move absent from the legal set of a position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPromotion indicates a promotion that does not match the
	// pending-promotion state of a position.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrMalformedPosition indicates position or move notation that cannot be parsed.
	ErrMalformedPosition = errors.New("malformed position")

	// ErrIllegalPosition indicates a parsed position that breaks the rules,
	// such as a side without exactly one king.
	ErrIllegalPosition = errors.New("illegal position")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the move text, the ply at
// which it was attempted and the side that attempted it.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move in coordinate notation
	PlyNum   int    // 1-based ply the move would have occupied (0 if unknown)
	Side     string // Side to move when the move was attempted (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a position notation error with field context.
type ParseError struct {
	Err   error  // The underlying error
	Field string // Name of the notation field (e.g. "castling")
	Got   string // The offending text
	Want  string // What was expected, if known
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Want != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Want, e.Got))
	} else if e.Want != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Want))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
