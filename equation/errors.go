// SPDX-License-Identifier: MIT
// Package equation: sentinel error set.
//
// Sentinels are plain errors.New values. Split returns its failures as a
// *SplitError, which matches the ErrSplit class as well as the precise
// cause. Charge/isotope rejection reuses formula.ErrUnsupportedNotation so
// callers see it as a parse-class failure.

package equation

import (
	"errors"
	"fmt"
)

// ErrSplit is the class sentinel matched by every splitting failure.
var ErrSplit = errors.New("equation: split error")

var (
	// ErrSeparatorCount is returned when the equation separator is missing
	// or appears more than once.
	ErrSeparatorCount = errors.New("equation: need exactly one arrow")

	// ErrEmptySide is returned when the reactant or product side is empty.
	ErrEmptySide = errors.New("equation: empty side")

	// ErrEmptyCompound is returned for an empty term such as "H2++O2", or a
	// bare coefficient such as "2+O2".
	ErrEmptyCompound = errors.New("equation: empty compound")
)

// ErrUnknownStyle is returned by ParseStyle for an unrecognised name.
var ErrUnknownStyle = errors.New("equation: unknown style")

// SplitError reports why an equation could not be divided into compounds.
// Equation is the normalized text the failure was found in.
type SplitError struct {
	Equation string
	Err      error
}

func (e *SplitError) Error() string { return e.Err.Error() }
func (e *SplitError) Unwrap() error { return e.Err }

// Is reports membership of the ErrSplit class.
func (e *SplitError) Is(target error) bool { return target == ErrSplit }

// splitErrorf wraps a formatted cause; format must carry a %w verb.
func splitErrorf(eq, format string, args ...any) error {
	return &SplitError{Equation: eq, Err: fmt.Errorf(format, args...)}
}
