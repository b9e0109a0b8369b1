// SPDX-License-Identifier: MIT
// Package: chembalance/balance
//
// balance.go — the single-equation pipeline.
//
// Design contract:
//   • Pure: no shared state; safe for concurrent use.
//   • Fail fast: each stage returns a *Error immediately, no local recovery.
//   • Determinism: same input and options ⇒ identical Result.

package balance

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/chembalance/builder"
	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/matrix"
	"github.com/katalvlaran/chembalance/solver"
)

// Result is a verified balancing of one equation.
type Result struct {
	// Input is the raw text as given to Balance.
	Input string `json:"input" yaml:"input" msgpack:"input"`
	// Equation is the normalised, unbalanced equation ("H2+O2-->H2O").
	Equation string `json:"equation" yaml:"equation" msgpack:"equation"`
	// Elements lists the matrix rows.
	Elements []string `json:"elements" yaml:"elements" msgpack:"elements"`
	// Matrix is the stoichiometric matrix, reactant columns negative.
	Matrix [][]int64 `json:"matrix" yaml:"matrix,flow" msgpack:"matrix"`
	// Coefficients are aligned with reactants followed by products.
	Coefficients []int64 `json:"coefficients" yaml:"coefficients,flow" msgpack:"coefficients"`
	// Balanced is the formatted equation.
	Balanced string `json:"balanced" yaml:"balanced" msgpack:"balanced"`
}

// Balance computes the minimal positive integer coefficients of input.
//
// Implementation:
//   - Stage 1 (split): equation.Split normalises and splits the text.
//   - Stage 2 (parse): builder.Build parses compounds into a System.
//   - Stage 3 (solve): solver.Solve, then Verify. A failed solve names the
//     number of independent sub-reactions when there is more than one.
//   - Stage 4: equation.Format renders the result.
//
// Errors:
//   - *Error with Stage set; errors.Is matches ErrSplit, ErrParse or ErrSolve
//     and the precise sentinel of the failing package.
//
// Complexity: dominated by exact elimination on an E×C matrix.
func Balance(input string, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	log := cfg.logger.With(slog.String("input", input))

	eq, err := equation.Split(input)
	if err != nil {
		return nil, fail(log, stageErrorf(StageSplit, input, err))
	}
	log.Debug("split", slog.String("stage", StageSplit.String()),
		slog.Int("reactants", len(eq.Reactants)), slog.Int("products", len(eq.Products)))

	sys, err := builder.Build(eq, cfg.build...)
	if err != nil {
		return nil, fail(log, stageErrorf(StageParse, input, err))
	}
	log.Debug("built", slog.String("stage", StageParse.String()),
		slog.Any("elements", sys.Elements), slog.Int("compounds", sys.Matrix.Cols()))

	coeffs, err := solver.Solve(sys.Matrix)
	if err != nil {
		if comps := sys.Components(); len(comps) > 1 {
			err = fmt.Errorf("%w (%d independent sub-reactions)", err, len(comps))
		}
		return nil, fail(log, stageErrorf(StageSolve, input, err))
	}
	if err = Verify(sys, coeffs); err != nil {
		return nil, fail(log, stageErrorf(StageSolve, input, err))
	}
	log.Debug("solved", slog.String("stage", StageSolve.String()),
		slog.Any("coefficients", []int64(coeffs)))

	return &Result{
		Input:        input,
		Equation:     eq.String(),
		Elements:     sys.Elements,
		Matrix:       sys.Matrix.ToRows(),
		Coefficients: coeffs,
		Balanced:     equation.Format(eq, coeffs, cfg.style),
	}, nil
}

// fail logs e at warn level and returns it.
func fail(log *slog.Logger, e *Error) error {
	log.Warn("balance failed", slog.String("stage", e.Stage.String()), slog.Any("error", e.Err))

	return e
}

// Verify checks that coeffs balance sys: one strictly positive entry per
// column, greatest common divisor 1, and A·x = 0 for every element row.
//
// Errors (all *solver.SolveError, matching ErrSolve):
//   - solver.ErrNonPositiveCoefficient for an entry ≤ 0.
//   - ErrNotMinimal when the entries share a divisor.
//   - ErrNotConserved for a length mismatch, overflow, or a non-zero row sum.
func Verify(sys *builder.System, coeffs []int64) error {
	if sys == nil {
		return verifyErrorf("%w: %w", ErrNotConserved, matrix.ErrNilMatrix)
	}
	var g int64
	for i, c := range coeffs {
		if c <= 0 {
			return verifyErrorf("%w: compound %d has coefficient %d", solver.ErrNonPositiveCoefficient, i, c)
		}
		g = gcd(g, c)
	}
	if g > 1 {
		return verifyErrorf("%w: common divisor %d", ErrNotMinimal, g)
	}

	y, err := matrix.MatVec(sys.Matrix, coeffs)
	if err != nil {
		return verifyErrorf("%w: %w", ErrNotConserved, err)
	}
	for row, v := range y {
		if v != 0 {
			return verifyErrorf("%w: %s is off by %d", ErrNotConserved, sys.Elements[row], v)
		}
	}

	return nil
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
