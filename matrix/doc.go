// Package matrix provides the exact linear-algebra kernels behind balancing.
//
// The matrix package provides:
//
//   - Dense: a row-major int64 matrix with bounds-checked At/Set, used to
//     hold stoichiometric counts (rows = elements, columns = compounds).
//   - Rational: a row-major math/big.Rat matrix for elimination without
//     rounding error.
//   - RREF (Gauss–Jordan over the rationals), Rank and NullSpace.
//   - MatVec with overflow detection, used to verify A·x = 0.
//
// Floating point never enters these kernels: stoichiometric ratios must be
// exact, and any rounding error would silently produce an unbalanced result.
//
// Matrices here are small (typically under 20×20), so clarity and
// determinism win over blocking or pivot heuristics.
package matrix
