// SPDX-License-Identifier: MIT
// Package formula: sentinel error set.
//
// Sentinels are plain errors.New values. Parse returns *ParseError values
// that carry the formula and the byte offset of the failure; a *ParseError
// matches both the broad class (errors.Is(err, ErrParse)) and the precise
// cause (errors.Is(err, ErrUnterminatedGroup)).

package formula

import (
	"errors"
	"fmt"
)

// ErrParse is the class sentinel matched by every formula failure.
var ErrParse = errors.New("formula: parse error")

var (
	// ErrUnterminatedGroup is returned when "(" or "[" has no matching closer
	// before the end of the formula.
	ErrUnterminatedGroup = errors.New("formula: unterminated group")

	// ErrMismatchedGroup is returned when a group is closed by the wrong kind
	// of delimiter, e.g. "(OH]".
	ErrMismatchedGroup = errors.New("formula: mismatched group delimiter")

	// ErrZeroCount is returned for an explicit zero subscript ("H0", "(OH)0").
	ErrZeroCount = errors.New("formula: zero subscript")

	// ErrCountOverflow is returned when a subscript or an accumulated atom
	// count does not fit into int.
	ErrCountOverflow = errors.New("formula: atom count overflow")

	// ErrUnsupportedNotation is returned for ionic charge or isotope markers,
	// which are not modelled.
	ErrUnsupportedNotation = errors.New("formula: charge or isotope notation is not supported")

	// ErrMisplacedDot is returned for a hydrate dot inside a group, e.g.
	// "(CuSO4·5H2O)". Adduct parts are only separated at the top level.
	ErrMisplacedDot = errors.New("formula: hydrate dot inside a group")

	// ErrNoElements is returned when a formula contributes no element at all
	// (empty string, "()", lowercase-only noise).
	ErrNoElements = errors.New("formula: formula contains no elements")
)

// ParseError describes where in which formula parsing failed.
type ParseError struct {
	Formula string // formula as given to Parse
	Offset  int    // byte offset of the offending token
	Err     error  // one of the sentinels above
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (formula %q, offset %d)", e.Err, e.Formula, e.Offset)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports membership of the ErrParse class.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// parseErrorf builds a *ParseError for formula src at offset off.
func parseErrorf(src string, off int, err error) error {
	return &ParseError{Formula: src, Offset: off, Err: err}
}
