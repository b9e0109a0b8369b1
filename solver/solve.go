// SPDX-License-Identifier: MIT

package solver

import (
	"math/big"

	"github.com/katalvlaran/chembalance/matrix"
)

// Coefficients holds one strictly positive integer per compound, aligned
// with the matrix columns, with greatest common divisor 1.
type Coefficients []int64

// Solve returns the minimal positive integer vector x with m·x = 0.
//
// Implementation:
//   - Stage 1: exact null space via matrix.NullSpace.
//   - Stage 2: require exactly one basis vector.
//   - Stage 3: Normalize it.
//
// Errors (all *SolveError, matching ErrSolve):
//   - ErrNoUniqueSolution (null space dimension ≠ 1).
//   - ErrNonPositiveCoefficient, ErrCoefficientOverflow (from Normalize).
//   - matrix errors (nil matrix) wrapped together with ErrSolve.
//
// Complexity: dominated by RREF, O(r·c·min(r,c)) rational operations.
func Solve(m matrix.Matrix) (Coefficients, error) {
	basis, err := matrix.NullSpace(m)
	if err != nil {
		return nil, solveErrorf("%w: %w", ErrSolve, err)
	}
	if len(basis) != 1 {
		return nil, solveErrorf("%w: null space has dimension %d", ErrNoUniqueSolution, len(basis))
	}

	return Normalize(basis[0])
}

// Normalize scales a rational vector to its minimal positive integer form.
// The input is not modified.
//
// Errors:
//   - ErrEmptyVector for len(v) == 0.
//   - ErrNonPositiveCoefficient when an entry is zero, or signs are mixed.
//   - ErrCoefficientOverflow when an entry does not fit into int64.
func Normalize(v []*big.Rat) (Coefficients, error) {
	if len(v) == 0 {
		return nil, &SolveError{Err: ErrEmptyVector}
	}

	// Stage 1: LCM of denominators, then scale to integers.
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, x := range v {
		d := x.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm.Quo(lcm, g), d)
	}
	ints := make([]*big.Int, len(v))
	negative := false
	for i, x := range v {
		n := new(big.Int).Quo(lcm, x.Denom())
		ints[i] = n.Mul(n, x.Num())
		if ints[i].Sign() < 0 {
			negative = true
		}
	}

	// Stage 2: a uniformly negative vector is the same solution mirrored.
	if negative {
		for _, n := range ints {
			n.Neg(n)
		}
	}

	// Stage 3: divide by the GCD of all entries.
	g.SetInt64(0)
	abs := new(big.Int)
	for _, n := range ints {
		g.GCD(nil, nil, g, abs.Abs(n))
	}
	if g.Sign() == 0 {
		return nil, solveErrorf("%w: all coefficients are zero", ErrNonPositiveCoefficient)
	}

	out := make(Coefficients, len(ints))
	for i, n := range ints {
		n.Quo(n, g)
		if n.Sign() <= 0 {
			return nil, solveErrorf("%w: compound %d has coefficient %s", ErrNonPositiveCoefficient, i, n)
		}
		if !n.IsInt64() {
			return nil, solveErrorf("%w: compound %d", ErrCoefficientOverflow, i)
		}
		out[i] = n.Int64()
	}

	return out, nil
}
