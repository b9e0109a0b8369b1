// SPDX-License-Identifier: MIT
// Package: chembalance/balance
//
// errors.go — stage taxonomy and the tagged error returned by Balance.
//
// Error policy:
//   • Stage classes are the underlying package sentinels re-exported here,
//     so errors.Is(err, balance.ErrParse) and errors.Is(err, formula.ErrParse)
//     are interchangeable.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     class membership comes from the typed error built at the return site.
//   • *Error never hides its cause: Unwrap exposes the precise sentinel.

package balance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/solver"
)

// Stage class sentinels.
var (
	ErrSplit = equation.ErrSplit
	ErrParse = formula.ErrParse
	ErrSolve = solver.ErrSolve
)

var (
	// ErrNotConserved indicates that A·x ≠ 0 for the verified coefficients.
	ErrNotConserved = errors.New("balance: coefficients do not conserve every element")

	// ErrNotMinimal indicates coefficients sharing a common divisor > 1.
	ErrNotMinimal = errors.New("balance: coefficients are not irreducible")
)

// Stage names the pipeline step that failed.
type Stage int

const (
	// StageSplit covers normalisation of the raw text and side splitting.
	StageSplit Stage = iota
	// StageParse covers compound formula parsing.
	StageParse
	// StageSolve covers null-space solving and verification.
	StageSolve
)

var stageNames = [...]string{"split", "parse", "solve"}

// String returns the lowercase stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}

	return stageNames[s]
}

// Error is the tagged failure of one Balance call.
type Error struct {
	Stage Stage
	Input string
	Err   error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("balance: %s failed for %q: %v", e.Stage, e.Input, e.Err)
}

// Unwrap exposes the stage cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// stageErrorf tags err with the stage it belongs to. Parse-class causes win
// over the caller's stage: Normalize rejects charge notation during split.
func stageErrorf(stage Stage, input string, err error) *Error {
	if errors.Is(err, formula.ErrParse) {
		stage = StageParse
	}

	return &Error{Stage: stage, Input: input, Err: err}
}

// verifyErrorf reports a Verify failure in the solve class; format must
// carry a %w verb.
func verifyErrorf(format string, args ...any) error {
	return &solver.SolveError{Err: fmt.Errorf(format, args...)}
}
