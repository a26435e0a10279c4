// Package errors provides sentinel errors and error types for the chess rules
// engine. It defines common error conditions and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not legal in the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidUCI indicates a string that is not a UCI move.
	ErrInvalidUCI = errors.New("invalid UCI move")

	// ErrGameOver indicates a move submitted after checkmate, stalemate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPuzzleSolved indicates a move submitted to an already solved puzzle.
	ErrPuzzleSolved = errors.New("puzzle already solved")
)

// FENError describes which FEN field could not be parsed.
type FENError struct {
	Err   error  // The underlying error, normally ErrInvalidFEN
	Field string // Name of the offending field, e.g. "castling"
	Value string // The text that was rejected
	FEN   string // The complete input (if known)
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context: the ply at which the move was
// attempted and its text.
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply number (0 if not applicable)
	Move string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
