// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
//
// Sentinels are plain errors.New values; context is attached at the return
// site and every failure leaves Solve or Normalize as a *SolveError, which
// matches the ErrSolve class as well as its precise cause.

package solver

import (
	"errors"
	"fmt"
)

// ErrSolve is the class sentinel matched by every solver failure.
var ErrSolve = errors.New("solver: no solution")

var (
	// ErrNoUniqueSolution is returned when the null space is not exactly
	// one-dimensional.
	ErrNoUniqueSolution = errors.New("solver: no unique solution")

	// ErrNonPositiveCoefficient is returned when normalisation leaves a zero
	// or negative coefficient.
	ErrNonPositiveCoefficient = errors.New("solver: non-positive coefficient")

	// ErrCoefficientOverflow is returned when a coefficient exceeds int64.
	ErrCoefficientOverflow = errors.New("solver: coefficient overflows int64")

	// ErrEmptyVector is returned by Normalize for an empty input.
	ErrEmptyVector = errors.New("solver: empty basis vector")
)

// SolveError is the concrete error returned by Solve and Normalize.
// errors.Is matches ErrSolve and the wrapped cause.
type SolveError struct {
	Err error
}

func (e *SolveError) Error() string { return e.Err.Error() }
func (e *SolveError) Unwrap() error { return e.Err }

// Is reports membership of the ErrSolve class.
func (e *SolveError) Is(target error) bool { return target == ErrSolve }

// solveErrorf wraps a formatted cause; format must carry a %w verb.
func solveErrorf(format string, args ...any) error {
	return &SolveError{Err: fmt.Errorf(format, args...)}
}
